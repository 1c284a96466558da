package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wagebook/wagebook-backend-go/internal/domain/attendance"
	"github.com/wagebook/wagebook-backend-go/internal/domain/payment"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func rec(id, date, status, amount string) attendance.Record {
	r := attendance.Record{
		ID:     id,
		Date:   day(date),
		Status: status,
	}
	if amount != "" {
		a := d(amount)
		r.Amount = &a
	}
	return r
}

func pay(id, date, amount string) payment.Payment {
	return payment.Payment{
		ID:     id,
		Date:   day(date),
		Amount: d(amount),
	}
}

func TestBalance_NoActivityEqualsOpening(t *testing.T) {
	got := Balance(d("37.50"), nil, nil)
	assert.True(t, got.Equal(d("37.50")), "got %s", got)
}

func TestBalance_Formula(t *testing.T) {
	records := []attendance.Record{
		rec("a1", "2024-03-01", attendance.StatusPresent, "150"),
		rec("a2", "2024-03-02", attendance.StatusHalfday, "75.25"),
	}
	payments := []payment.Payment{
		pay("p1", "2024-03-03", "100"),
	}

	// 100 + 150 + 75.25 - 100
	got := Balance(d("100"), records, payments)
	assert.True(t, got.Equal(d("225.25")), "got %s", got)
}

func TestBalance_AbsentNeverContributes(t *testing.T) {
	records := []attendance.Record{
		rec("a1", "2024-03-01", attendance.StatusAbsent, "500"),
		rec("a2", "2024-03-02", attendance.StatusAbsent, ""),
	}

	got := Balance(decimal.Zero, records, nil)
	assert.True(t, got.IsZero(), "got %s", got)
}

func TestBalance_IgnoresNonPositiveWages(t *testing.T) {
	records := []attendance.Record{
		rec("a1", "2024-03-01", attendance.StatusPresent, "0"),
		rec("a2", "2024-03-02", attendance.StatusPresent, ""),
		rec("a3", "2024-03-03", attendance.StatusHalfday, "-20"),
		rec("a4", "2024-03-04", attendance.StatusPresent, "100"),
	}

	got := Balance(decimal.Zero, records, nil)
	assert.True(t, got.Equal(d("100")), "got %s", got)
}

func TestBalance_IgnoresNonPositivePayments(t *testing.T) {
	payments := []payment.Payment{
		pay("p1", "2024-03-01", "0"),
		pay("p2", "2024-03-02", "-10"),
		pay("p3", "2024-03-03", "40"),
	}

	got := Balance(d("100"), nil, payments)
	assert.True(t, got.Equal(d("60")), "got %s", got)
}

func TestBalance_RoundsHalfUp(t *testing.T) {
	tests := []struct {
		name    string
		opening string
		wage    string
		want    string
	}{
		{"half rounds up", "0", "10.005", "10.01"},
		{"below half rounds down", "0", "10.004", "10.00"},
		{"above half rounds up", "0", "10.006", "10.01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := []attendance.Record{rec("a1", "2024-03-01", attendance.StatusPresent, tt.wage)}
			got := Balance(d(tt.opening), records, nil)
			assert.True(t, got.Equal(d(tt.want)), "got %s, want %s", got, tt.want)
		})
	}
}

func TestReplay_RunningSequence(t *testing.T) {
	records := []attendance.Record{
		rec("a1", "2024-03-01", attendance.StatusPresent, "50"),
	}
	payments := []payment.Payment{
		pay("p1", "2024-03-02", "30"),
	}

	events := Replay(d("100"), records, payments)
	require.Len(t, events, 2)

	assert.Equal(t, EventAttendance, events[0].Kind)
	assert.True(t, events[0].Running.Equal(d("150")), "got %s", events[0].Running)
	assert.Equal(t, EventPayment, events[1].Kind)
	assert.True(t, events[1].Running.Equal(d("120")), "got %s", events[1].Running)
}

func TestReplay_SeedsAtOpeningUnderDateFilter(t *testing.T) {
	// Only the day-2 payment fell inside the requested range. The seed is
	// still the opening balance, not the balance after day 1.
	payments := []payment.Payment{
		pay("p1", "2024-03-02", "30"),
	}

	events := Replay(d("100"), nil, payments)
	require.Len(t, events, 1)
	assert.True(t, events[0].Running.Equal(d("70")), "got %s", events[0].Running)
}

func TestReplay_SameDateKeepsFetchOrder(t *testing.T) {
	records := []attendance.Record{
		rec("a1", "2024-03-01", attendance.StatusPresent, "10"),
		rec("a2", "2024-03-01", attendance.StatusPresent, "20"),
	}
	payments := []payment.Payment{
		pay("p1", "2024-03-01", "5"),
	}

	events := Replay(decimal.Zero, records, payments)
	require.Len(t, events, 3)

	// Attendance rows keep their fetch order, payments follow on ties.
	assert.Equal(t, "a1", events[0].RefID)
	assert.Equal(t, "a2", events[1].RefID)
	assert.Equal(t, "p1", events[2].RefID)
	assert.True(t, events[2].Running.Equal(d("25")), "got %s", events[2].Running)
}

func TestReplay_AbsentRowContributesZero(t *testing.T) {
	records := []attendance.Record{
		rec("a1", "2024-03-01", attendance.StatusAbsent, ""),
		rec("a2", "2024-03-02", attendance.StatusPresent, "80"),
	}

	events := Replay(d("20"), records, nil)
	require.Len(t, events, 2)
	assert.True(t, events[0].Running.Equal(d("20")), "got %s", events[0].Running)
	assert.True(t, events[1].Running.Equal(d("100")), "got %s", events[1].Running)
}

func TestTotals(t *testing.T) {
	records := []attendance.Record{
		rec("a1", "2024-03-01", attendance.StatusPresent, "100"),
		rec("a2", "2024-03-02", attendance.StatusHalfday, "50"),
		rec("a3", "2024-03-03", attendance.StatusAbsent, ""),
	}
	payments := []payment.Payment{
		pay("p1", "2024-03-04", "60"),
		pay("p2", "2024-03-05", "-5"),
	}

	daysWorked, wages, paid := Totals(records, payments)
	assert.Equal(t, 2, daysWorked)
	assert.True(t, wages.Equal(d("150")), "got %s", wages)
	assert.True(t, paid.Equal(d("60")), "got %s", paid)
}

func TestToEventRow(t *testing.T) {
	att := Replay(decimal.Zero, []attendance.Record{rec("a1", "2024-03-01", attendance.StatusPresent, "75")}, nil)
	require.Len(t, att, 1)

	row := ToEventRow("Ramesh", &att[0])
	assert.Equal(t, "2024-03-01", row.Date)
	assert.Equal(t, "Ramesh", row.WorkerName)
	assert.Equal(t, "present", row.Status)
	assert.Equal(t, "75.00", row.WageAmount)
	assert.Equal(t, "", row.PaymentAmount)
	assert.Equal(t, "75.00", row.RunningBalance)

	pm := Replay(d("75"), nil, []payment.Payment{pay("p1", "2024-03-02", "25")})
	require.Len(t, pm, 1)

	row = ToEventRow("Ramesh", &pm[0])
	assert.Equal(t, "", row.Status)
	assert.Equal(t, "", row.WageAmount)
	assert.Equal(t, "25.00", row.PaymentAmount)
	assert.Equal(t, "50.00", row.RunningBalance)
}
