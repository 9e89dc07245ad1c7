// Package export выгружает журнал транзакций в CSV и XLSX и формирует PDF квитанции.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/fsdevblog/jadanpay/internal/domain"
	"github.com/tealeg/xlsx"
)

const (
	ledgerSheet = "Transactions"
	dateLayout  = time.RFC3339
	emptyCell   = "-"
)

var ledgerHeaders = []string{"ID", "User", "Type", "Amount", "Cost", "Profit", "Provider", "Date", "Status"}

func ledgerRow(t domain.Transaction) []string {
	provider := t.Provider
	if provider == "" {
		provider = emptyCell
	}
	return []string{
		strconv.FormatInt(t.ID, 10),
		strconv.FormatInt(t.UserID, 10),
		string(t.Type),
		t.Amount.String(),
		t.CostPrice.String(),
		t.Profit.String(),
		provider,
		t.CreatedAt.UTC().Format(dateLayout),
		string(t.Status),
	}
}

// LedgerCSV пишет журнал в формате CSV с заголовком.
func LedgerCSV(w io.Writer, txs []domain.Transaction) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(ledgerHeaders); err != nil {
		return fmt.Errorf("ledger csv: %w", err)
	}
	for _, t := range txs {
		if err := cw.Write(ledgerRow(t)); err != nil {
			return fmt.Errorf("ledger csv: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("ledger csv: %w", err)
	}
	return nil
}

// LedgerXLSX пишет журнал книгой Excel с одним листом.
func LedgerXLSX(w io.Writer, txs []domain.Transaction) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet(ledgerSheet)
	if err != nil {
		return fmt.Errorf("ledger xlsx: %w", err)
	}

	header := sheet.AddRow()
	for _, h := range ledgerHeaders {
		header.AddCell().SetString(h)
	}
	for _, t := range txs {
		row := sheet.AddRow()
		values := ledgerRow(t)
		row.AddCell().SetInt64(t.ID)
		row.AddCell().SetInt64(t.UserID)
		row.AddCell().SetString(values[2])
		// Суммы пишутся числами, чтобы по ним работали формулы.
		row.AddCell().SetFloat(t.Amount.InexactFloat64())
		row.AddCell().SetFloat(t.CostPrice.InexactFloat64())
		row.AddCell().SetFloat(t.Profit.InexactFloat64())
		for _, v := range values[6:] {
			row.AddCell().SetString(v)
		}
	}

	if err = file.Write(w); err != nil {
		return fmt.Errorf("ledger xlsx: %w", err)
	}
	return nil
}
