package render

import (
	"errors"
	"strings"

	"github.com/fatih/color"
	"github.com/trebuchet-org/abisync/internal/domain"
)

// FormatWarning formats a warning message with the warning icon
func FormatWarning(message string) string {
	return color.New(color.FgYellow).Sprintf("⚠️  %s", message)
}

// FormatError formats an error with the error icon.
// Contract-level failures name the contract and stage before the cause.
func FormatError(err error) string {
	var contractErr *domain.ContractError
	if errors.As(err, &contractErr) {
		return color.New(color.FgRed).Sprintf("❌ Failed to process %s during %s: %v",
			contractErr.Contract, contractErr.Stage, contractErr.Err)
	}

	msg := err.Error()
	if len(msg) > 0 {
		msg = strings.ToUpper(msg[:1]) + msg[1:]
	}
	return color.New(color.FgRed).Sprintf("❌ %s", msg)
}

// FormatSuccess formats a success message with the success icon
func FormatSuccess(message string) string {
	return color.New(color.FgGreen).Sprintf("✅ %s", message)
}
