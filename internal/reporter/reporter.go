// Package reporter публикует итог запуска в GitHub Actions: сводку шага,
// выходные значения и аннотацию об ошибке.
package reporter

import (
	"fmt"
	"strings"
	"time"

	"github.com/sethvargo/go-githubactions"

	"github.com/Totarae/akamai-purge/internal/model"
)

// Tag открывает каждое сообщение об ошибке и заголовок сводки.
const Tag = "akamai-purge"

// Reporter пишет результат одного запуска.
type Reporter struct {
	action *githubactions.Action
	now    func() time.Time
}

func New(action *githubactions.Action) *Reporter {
	return &Reporter{action: action, now: time.Now}
}

// Succeeded добавляет сводку с таблицей URL и выставляет выходы time и purge_id.
func (r *Reporter) Succeeded(res *model.PurgeResult) {
	r.action.AddStepSummary(RenderSummary(res))
	r.action.SetOutput("time", r.now().Format(time.RFC3339))
	if res.Ack != nil && res.Ack.PurgeID != "" {
		r.action.SetOutput("purge_id", res.Ack.PurgeID)
	}
}

// Failed помечает шаг упавшим. Сводка не пишется.
func (r *Reporter) Failed(err error) {
	r.action.Errorf("%s", FailureMessage(err))
}

// FailureMessage формирует однострочное сообщение об ошибке.
func FailureMessage(err error) string {
	if err == nil {
		return Tag + ": unknown error"
	}
	return Tag + ": " + err.Error()
}

// RenderSummary строит markdown-сводку. Akamai подтверждает только приём
// запроса, поэтому сводка не утверждает, что кеш уже очищен.
func RenderSummary(res *model.PurgeResult) string {
	var b strings.Builder

	b.WriteString("## " + Tag + "\n\n")
	if res.Ack != nil && res.Ack.PurgeID != "" {
		fmt.Fprintf(&b, "Purge request accepted (purge ID `%s`, estimated %ds).\n\n",
			res.Ack.PurgeID, res.Ack.EstimatedSeconds)
	} else {
		b.WriteString("Purge request accepted.\n\n")
	}

	b.WriteString("| url |\n")
	b.WriteString("| --- |\n")
	for _, target := range res.Targets {
		b.WriteString("| " + escapeCell(target) + " |\n")
	}
	return b.String()
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
