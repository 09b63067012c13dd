package relevance

import (
	"context"
	"fmt"
	"strings"

	"github.com/theoremus-urban-solutions/commute-alert/llm"
)

const summarizeSystemPrompt = `You are CommuteAI, a notification system that helps commuters get relevant alerts.
Your task is to summarize public transportation alerts for the user's commute.
Begin your summary with "Good morning, %s".

Alerts:
%s`

// Summarize turns a pre-filtered set of relevant messages into the email
// body. The model's free-text output is final; no structure is enforced
// beyond the greeting instruction in the prompt.
func Summarize(ctx context.Context, chat llm.Chat, relevant []string, cc Context) (string, error) {
	system := fmt.Sprintf(summarizeSystemPrompt, cc.UserName, strings.Join(relevant, "\n"))
	return chat.Complete(ctx, system, cc.journeyDescription())
}
