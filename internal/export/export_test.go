package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/fsdevblog/jadanpay/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx"
)

func sampleLedger() []domain.Transaction {
	date := time.Date(2026, 10, 1, 9, 30, 0, 0, time.UTC)
	return []domain.Transaction{
		{
			ID: 1, UserID: 7, Type: domain.TransactionAirtime, Provider: domain.ProviderMTN,
			Amount: decimal.NewFromInt(1000), CostPrice: decimal.NewFromInt(980), Profit: decimal.NewFromInt(20),
			CreatedAt: date, Status: domain.TransactionStatusSuccess,
		},
		{
			ID: 2, UserID: 7, Type: domain.TransactionWalletFund, Amount: decimal.NewFromInt(5000),
			CreatedAt: date, Status: domain.TransactionStatusPending,
		},
	}
}

func TestLedgerCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, LedgerCSV(&buf, sampleLedger()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"ID", "User", "Type", "Amount", "Cost", "Profit", "Provider", "Date", "Status"},
		records[0])
	assert.Equal(t, []string{"1", "7", "AIRTIME", "1000", "980", "20", "MTN", "2026-10-01T09:30:00Z", "SUCCESS"},
		records[1])
	assert.Equal(t, "-", records[2][6])
	assert.Equal(t, "0", records[2][4])
}

func TestLedgerXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, LedgerXLSX(&buf, sampleLedger()))

	file, err := xlsx.OpenBinary(buf.Bytes())
	require.NoError(t, err)
	require.Len(t, file.Sheets, 1)

	sheet := file.Sheets[0]
	assert.Equal(t, "Transactions", sheet.Name)
	require.Len(t, sheet.Rows, 3)
	assert.Equal(t, "Provider", sheet.Rows[0].Cells[6].Value)
	assert.Equal(t, "AIRTIME", sheet.Rows[1].Cells[2].Value)
	assert.Equal(t, "SUCCESS", sheet.Rows[1].Cells[8].Value)
}

func TestReceipt(t *testing.T) {
	tx := sampleLedger()[0]
	tx.Reference = "REF-123456789"
	tx.DestinationNumber = "08031234567"
	tx.RoundUp = decimal.NewFromInt(50)

	var buf bytes.Buffer
	err := Receipt(&buf, ReceiptArgs{AppName: "JadanPay", Transaction: tx, User: &domain.User{Name: "Musa"}})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))

	lines := receiptLines(ReceiptArgs{Transaction: tx, User: &domain.User{Name: "Musa"}})
	assert.Contains(t, lines, [2]string{"Recipient", "08031234567"})
	assert.Contains(t, lines, [2]string{"Saved (Round-up)", "NGN 50.00"})
	assert.Contains(t, lines, [2]string{"Customer", "Musa"})
	assert.NotContains(t, lines, [2]string{"Plan", ""})
}

func TestAmount(t *testing.T) {
	assert.Equal(t, "NGN 1,500.00", amount(decimal.NewFromInt(1500)))
}
