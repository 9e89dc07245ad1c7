package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/fsdevblog/jadanpay/internal/domain"
	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	receiptFont      = "Arial"
	receiptLabelW    = 55.0
	receiptValueW    = 115.0
	receiptLineH     = 8.0
	receiptCurrency  = "NGN"
	receiptTimestamp = "02 Jan 2006, 15:04"
)

var printer = message.NewPrinter(language.English)

// ReceiptArgs данные квитанции по одной транзакции.
type ReceiptArgs struct {
	AppName     string
	Transaction domain.Transaction
	User        *domain.User
}

// Receipt пишет квитанцию транзакции в формате PDF.
func Receipt(w io.Writer, args ReceiptArgs) error {
	t := args.Transaction

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("%s receipt %s", args.AppName, t.Reference), false)
	pdf.AddPage()

	pdf.SetFont(receiptFont, "B", 18)
	pdf.CellFormat(0, 12, args.AppName, "", 1, "C", false, 0, "")
	pdf.SetFont(receiptFont, "", 12)
	pdf.CellFormat(0, receiptLineH, "Transaction Receipt", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont(receiptFont, "B", 22)
	pdf.CellFormat(0, 14, amount(t.Amount), "", 1, "C", false, 0, "")
	pdf.SetFont(receiptFont, "B", 12)
	pdf.CellFormat(0, receiptLineH, string(t.Status), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	for _, line := range receiptLines(args) {
		pdf.SetFont(receiptFont, "B", 11)
		pdf.CellFormat(receiptLabelW, receiptLineH, line[0], "1", 0, "", false, 0, "")
		pdf.SetFont(receiptFont, "", 11)
		pdf.CellFormat(receiptValueW, receiptLineH, line[1], "1", 1, "", false, 0, "")
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("receipt %s: %w", t.Reference, err)
	}
	return nil
}

func receiptLines(args ReceiptArgs) [][2]string {
	t := args.Transaction
	lines := [][2]string{
		{"Reference", t.Reference},
		{"Date", t.CreatedAt.Format(receiptTimestamp)},
		{"Type", strings.ReplaceAll(string(t.Type), "_", " ")},
	}
	if args.User != nil {
		lines = append(lines, [2]string{"Customer", args.User.Name})
	}
	optional := [][2]string{
		{"Provider", t.Provider},
		{"Plan", t.BundleName},
		{"Recipient", t.DestinationNumber},
		{"Account Name", t.CustomerName},
		{"Payment Method", t.PaymentMethod},
		{"Vendor Reference", t.VendorReference},
	}
	for _, l := range optional {
		if l[1] != "" {
			lines = append(lines, l)
		}
	}
	if t.RoundUp.IsPositive() {
		lines = append(lines, [2]string{"Saved (Round-up)", amount(t.RoundUp)})
	}
	lines = append(lines,
		[2]string{"Previous Balance", amount(t.PreviousBalance)},
		[2]string{"New Balance", amount(t.NewBalance)},
	)
	return lines
}

// amount сумма для PDF. Встроенные шрифты не содержат знака найры, поэтому используется код валюты.
func amount(d decimal.Decimal) string {
	return receiptCurrency + " " + printer.Sprintf("%.2f", d.Round(2).InexactFloat64()) //nolint:mnd
}
