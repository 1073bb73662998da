package bot

import (
	"log/slog"
	"strings"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"

	"guestdesk/internal/lib/logger/sl"
)

// MessageSaver persists chat exchanges. Saving is best-effort: a storage
// failure never fails the reply.
type MessageSaver interface {
	SaveChatMessage(userID, message, reply string) error
}

const fallbackReply = "I'm sorry, I didn't quite catch that. You can ask me about " +
	"check-in and check-out times, wifi, breakfast, the pool, the spa, parking, " +
	"room service or airport transfers, or dial 0 for the front desk."

const similarityThreshold = 0.5

// Concierge answers free-text guest questions by fuzzy-matching them against
// a fixed hotel knowledge base.
type Concierge struct {
	log     *slog.Logger
	saver   MessageSaver
	cm      *closestmatch.ClosestMatch
	answers map[string]string
}

func New(log *slog.Logger, saver MessageSaver) *Concierge {
	answers := knowledgeBase()

	keywords := make([]string, 0, len(answers))
	for k := range answers {
		keywords = append(keywords, k)
	}

	return &Concierge{
		log:     log,
		saver:   saver,
		cm:      closestmatch.New(keywords, []int{2, 3}),
		answers: answers,
	}
}

func (c *Concierge) Reply(userID, message string) (string, error) {
	query := normalizeInput(message)

	reply := fallbackReply

	if query != "" {
		if answer, ok := c.matchKeyword(query); ok {
			reply = answer
		} else if answer, ok := c.matchClosest(query); ok {
			reply = answer
		}
	}

	if c.saver != nil {
		if err := c.saver.SaveChatMessage(userID, message, reply); err != nil {
			c.log.Warn("failed to save chat message", sl.Err(err))
		}
	}

	return reply, nil
}

// matchKeyword answers when a knowledge-base keyword appears verbatim in the
// query.
func (c *Concierge) matchKeyword(query string) (string, bool) {
	for keyword, answer := range c.answers {
		if strings.Contains(query, keyword) {
			return answer, true
		}
	}
	return "", false
}

// matchClosest tolerates typos: the closest keyword by n-gram bags wins if it
// is similar enough to the query.
func (c *Concierge) matchClosest(query string) (string, bool) {
	closest := c.cm.Closest(query)
	if closest == "" {
		return "", false
	}

	if calculateSimilarity(query, closest) < similarityThreshold {
		return "", false
	}

	return c.answers[closest], true
}

// Нормализация строки запроса
func normalizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}

	if maxLen == 0 {
		return 0
	}

	return 1 - float64(distance)/maxLen
}

func knowledgeBase() map[string]string {
	return map[string]string{
		"check in":        "Check-in starts at 2:00 PM. Early check-in is subject to availability, just ask at the front desk.",
		"check out":       "Check-out is until 11:00 AM. Late check-out until 2:00 PM can be arranged for a small fee.",
		"wifi":            "Complimentary wifi is available throughout the hotel. Network: GuestDesk, password: your room number + surname.",
		"breakfast":       "Breakfast is served in the restaurant from 7:00 to 10:30 AM, and is included with Deluxe and Suite rooms.",
		"swimming pool":   "The rooftop pool is open daily from 6:00 AM to 10:00 PM. Towels are provided poolside.",
		"spa":             "The spa is open from 9:00 AM to 9:00 PM. Treatments can be booked through the front desk.",
		"gym":             "The fitness centre on the 2nd floor is open around the clock for hotel guests.",
		"parking":         "Underground parking is available for ₹300 per night. Valet service runs from 6:00 AM to midnight.",
		"room service":    "Room service runs 24/7. Use the room service form in the app or dial 2 from your room phone.",
		"airport shuttle": "The airport shuttle departs every hour from the main entrance. Book a seat at the front desk.",
		"pets":            "Small pets are welcome in Standard and Deluxe rooms for a ₹500 cleaning fee per stay.",
		"laundry":         "Laundry handed in before 9:00 AM is returned the same evening.",
	}
}
