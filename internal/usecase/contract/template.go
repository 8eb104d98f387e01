package contract

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
	"time"
)

// ContractTerms подставляются в текст договора.
type ContractTerms struct {
	ClientUsername   string
	CreativeUsername string
	BookingDate      time.Time
	HourlyRate       float64
}

const contractBodyTemplate = `
CONTRACT OF SERVICE AGREEMENT

This Agreement is made between:
CLIENT: {{.ClientUsername}}
PROVIDER: {{.CreativeUsername}}

1. SERVICES
The Provider agrees to perform services on {{date .BookingDate}} as requested in the booking requirements.

2. PAYMENT
The Client agrees to pay the rate of ${{rate .HourlyRate}} per hour/day upon completion.

3. CANCELLATION
Cancellations made less than 24 hours before the booking time may incur a fee.

By clicking 'Accept', both parties agree to these terms.
`

var contractTmpl = template.Must(template.New("contract").Funcs(template.FuncMap{
	"date": func(t time.Time) string { return t.Format("2006-01-02") },
	"rate": func(v float64) string { return fmt.Sprintf("%.2f", v) },
}).Parse(contractBodyTemplate))

// RenderContractBody строит текст договора. Чистая функция: одинаковые условия дают одинаковый текст.
func RenderContractBody(terms ContractTerms) (string, error) {
	var buf bytes.Buffer
	if err := contractTmpl.Execute(&buf, terms); err != nil {
		return "", fmt.Errorf("render contract body: %w", err)
	}
	return strings.TrimSpace(buf.String()), nil
}
