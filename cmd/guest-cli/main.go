package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"

	"guestdesk/internal/client"
	"guestdesk/internal/client/flow"
	"guestdesk/internal/lib/logger/handlers/slogdiscard"
	"guestdesk/internal/models"
)

var (
	heading = color.New(color.FgCyan, color.Bold)
	prompt  = color.New(color.FgYellow)
	good    = color.New(color.FgGreen)
	bad     = color.New(color.FgRed)
)

func main() {
	serverURL := flag.String("server", envOr("GUESTDESK_URL", "http://localhost:8080"), "backend base URL")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	api := client.New(*serverURL)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	err := api.WaitReady(ctx)
	cancel()
	if err != nil {
		bad.Fprintf(os.Stderr, "server at %s is not answering: %v\n", *serverURL, err)
		os.Exit(1)
	}

	switch args[0] {
	case "chat":
		err = runChat(api)
	case "availability":
		err = runAvailability(api, args[1:])
	case "book":
		err = runBook(api)
	case "pay":
		err = runPay(api, args[1:])
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		bad.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: guest-cli [-server URL] <command>")
	fmt.Fprintln(os.Stderr, "commands:")
	fmt.Fprintln(os.Stderr, "  chat                      talk to the concierge")
	fmt.Fprintln(os.Stderr, "  availability <in> <out>   room availability for a date range")
	fmt.Fprintln(os.Stderr, "  book                      make a booking and pay for it")
	fmt.Fprintln(os.Stderr, "  pay <booking-id>          retry payment for an existing booking")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func runChat(api *client.Client) error {
	heading.Println("Concierge chat. Empty line to quit.")

	in := bufio.NewScanner(os.Stdin)
	userID := ask(in, "Your email")

	for {
		prompt.Print("> ")
		if !in.Scan() {
			return nil
		}
		msg := strings.TrimSpace(in.Text())
		if msg == "" {
			return nil
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		reply, err := api.Chat(ctx, userID, msg)
		cancel()
		if err != nil {
			bad.Printf("error: %v\n", err)
			continue
		}

		good.Printf("concierge: %s\n", reply)
	}
}

func runAvailability(api *client.Client, args []string) error {
	if len(args) != 2 {
		return errors.New("usage: guest-cli availability <check-in> <check-out>")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	query := flow.NewAvailabilityQuery(api.Availability)
	if _, err := query.Fetch(ctx, args[0], args[1]); err != nil {
		return err
	}

	avail, checkIn, checkOut, ok := query.Snapshot()
	if !ok {
		return errors.New("no availability answer")
	}

	heading.Printf("Availability %s to %s\n", checkIn, checkOut)
	for _, rt := range models.RoomTypes() {
		fmt.Printf("  %-10s %d rooms open\n", rt, avail.Count(rt))
	}

	return nil
}

func runBook(api *client.Client) error {
	in := bufio.NewScanner(os.Stdin)

	heading.Println("New booking")

	form := flow.DefaultForm()
	form.UserID = ask(in, "Email")
	form.Name = ask(in, "Name")
	if rt := ask(in, fmt.Sprintf("Room type %v [%s]", models.RoomTypes(), form.RoomType)); rt != "" {
		form.RoomType = rt
	}
	form.CheckIn = ask(in, "Check-in (YYYY-MM-DD)")
	form.CheckOut = ask(in, "Check-out (YYYY-MM-DD)")

	f := flow.New(slogdiscard.NewDiscardLogger(), api, &terminalCheckout{in: in})
	f.SetForm(form)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	err := f.Run(ctx)
	return report(f, err)
}

func runPay(api *client.Client, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: guest-cli pay <booking-id>")
	}

	in := bufio.NewScanner(os.Stdin)
	f := flow.New(slogdiscard.NewDiscardLogger(), api, &terminalCheckout{in: in})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	err := f.ResumePayment(ctx, args[0])
	return report(f, err)
}

func report(f *flow.Flow, err error) error {
	switch {
	case err == nil:
		good.Println("Payment verified. Your booking is confirmed.")
		if b := f.Booking(); b != nil && b.Confirmation != "" {
			fmt.Println(b.Confirmation)
		}
		return nil
	case errors.Is(err, flow.ErrCheckoutDismissed):
		prompt.Println("Checkout dismissed. Your booking is still pending.")
		if b := f.Booking(); b != nil {
			fmt.Printf("Resume later with: guest-cli pay %s\n", b.ID)
		}
		return nil
	default:
		var conflict *client.ConflictError
		if errors.As(err, &conflict) {
			bad.Println(conflict.Message)
			for _, rt := range models.RoomTypes() {
				fmt.Printf("  %-10s %d rooms open\n", rt, conflict.AvailableRooms.Count(rt))
			}
			return nil
		}
		return err
	}
}

// terminalCheckout stands in for the payment widget: it shows the order and
// reads the payment id and signature from the terminal. An empty payment id
// dismisses the checkout.
type terminalCheckout struct {
	in *bufio.Scanner
}

func (c *terminalCheckout) Run(_ context.Context, params flow.CheckoutParams) (flow.CheckoutResult, error) {
	heading.Println("Checkout")
	fmt.Printf("  Order:  %s\n", params.OrderID)
	fmt.Printf("  Amount: %s\n", flow.FormatAmount(params.Amount, params.Currency))
	if params.Description != "" {
		fmt.Printf("  %s\n", params.Description)
	}

	paymentID := ask(c.in, "Payment ID (empty to cancel)")
	if paymentID == "" {
		return flow.CheckoutResult{}, flow.ErrCheckoutDismissed
	}
	signature := ask(c.in, "Signature")

	return flow.CheckoutResult{PaymentID: paymentID, Signature: signature}, nil
}

func ask(in *bufio.Scanner, label string) string {
	prompt.Printf("%s: ", label)
	if !in.Scan() {
		return ""
	}
	return strings.TrimSpace(in.Text())
}
