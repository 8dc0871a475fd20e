package analyzer

import (
	"fmt"
	"go/token"
	"strings"

	"golang.org/x/tools/go/analysis"

	"github.com/relguard/relguard/models"
)

func report(pass *analysis.Pass, pos token.Pos, rule models.RuleType, detail string) {
	pass.Report(analysis.Diagnostic{
		Pos:      pos,
		Message:  formatMessage(rule, detail),
		Category: rule.GetAnalyzer().String(),
	})
}

func formatMessage(rule models.RuleType, detail string) string {
	detail = normalizeSentence(detail)
	summary := normalizeSentence(rule.Summary())
	fix := normalizeSentence(rule.Fix())
	return fmt.Sprintf("[%s] %s Why: %s Fix: %s", rule.GetRGID(), detail, summary, fix)
}

func normalizeSentence(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return text
	}
	if strings.HasSuffix(text, ".") || strings.HasSuffix(text, "!") || strings.HasSuffix(text, "?") {
		return text
	}
	return text + "."
}
