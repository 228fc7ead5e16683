package quotes

import (
	"math/rand/v2"
	"slices"

	"github.com/dmitrijs2005/studify/internal/models"
)

var fallbackQuotes = []models.Quote{
	{Text: "Success is the sum of small efforts repeated day in and day out.", Author: "Robert Collier"},
	{Text: "The expert in anything was once a beginner.", Author: "Helen Hayes"},
	{Text: "Education is the most powerful weapon which you can use to change the world.", Author: "Nelson Mandela"},
	{Text: "The beautiful thing about learning is that no one can take it away from you.", Author: "B.B. King"},
	{Text: "Intelligence plus character, that is the goal of true education.", Author: "Martin Luther King Jr."},
	{Text: "Study while others are sleeping; work while others are loafing.", Author: "William A. Ward"},
	{Text: "The capacity to learn is a gift; the ability to learn is a skill; the willingness to learn is a choice.", Author: "Brian Herbert"},
	{Text: "Don't let what you cannot do interfere with what you can do.", Author: "John Wooden"},
	{Text: "The more that you read, the more things you will know. The more that you learn, the more places you'll go.", Author: "Dr. Seuss"},
	{Text: "Learning is not attained by chance, it must be sought for with ardor and attended to with diligence.", Author: "Abigail Adams"},
	{Text: "Your attitude, not your aptitude, will determine your altitude.", Author: "Zig Ziglar"},
	{Text: "The only way to learn mathematics is to do mathematics.", Author: "Paul Halmos"},
	{Text: "Education is not preparation for life; education is life itself.", Author: "John Dewey"},
	{Text: "Live as if you were to die tomorrow. Learn as if you were to live forever.", Author: "Mahatma Gandhi"},
	{Text: "The roots of education are bitter, but the fruit is sweet.", Author: "Aristotle"},
	{Text: "It does not matter how slowly you go as long as you do not stop.", Author: "Confucius"},
	{Text: "Believe you can and you're halfway there.", Author: "Theodore Roosevelt"},
	{Text: "Strive for progress, not perfection.", Author: "Unknown"},
	{Text: "The secret of getting ahead is getting started.", Author: "Mark Twain"},
	{Text: "You don't have to be great to start, but you have to start to be great.", Author: "Zig Ziglar"},
}

// Fallback returns the full static list.
func Fallback() []models.Quote {
	return slices.Clone(fallbackQuotes)
}

// RandomFallback returns up to n distinct static quotes in random order.
func RandomFallback(n int) []models.Quote {
	q := Fallback()
	rand.Shuffle(len(q), func(i, j int) { q[i], q[j] = q[j], q[i] })
	if n < 0 {
		n = 0
	}
	if n < len(q) {
		q = q[:n]
	}
	return q
}

func randomFallbackOne() models.Quote {
	return fallbackQuotes[rand.IntN(len(fallbackQuotes))]
}
