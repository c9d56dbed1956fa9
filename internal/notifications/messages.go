package notifications

import (
	"fmt"
	"math/rand"
)

// Wording rotates so a kitchen full of timers does not read like a
// fire alarm log.
var timerDoneTemplates = []string{
	"Ding! \"%s\" is up.",
	"\"%s\" just hit zero. Back to the stove!",
	"Time's up on \"%s\".",
	"Your \"%s\" timer is done.",
	"\"%s\" finished counting down.",
}

// timerDoneMessage composes the push body for a finished timer
func timerDoneMessage(recipeTitle, timerName string) string {
	message := fmt.Sprintf(timerDoneTemplates[rand.Intn(len(timerDoneTemplates))], timerName)
	if recipeTitle != "" {
		message = fmt.Sprintf("%s (%s)", message, recipeTitle)
	}
	return message
}
