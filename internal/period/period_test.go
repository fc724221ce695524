package period

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// 2024-03-13 為星期三
var wednesday = time.Date(2024, 3, 13, 15, 30, 0, 0, time.UTC)

func TestBuildQuery(t *testing.T) {
	cases := []struct {
		label      Label
		start, end string
	}{
		{Last7Days, "2024-03-06", "2024-03-13"},
		{Last7DaysFromYesterday, "2024-03-05", "2024-03-12"},
		{Last14Days, "2024-02-28", "2024-03-13"},
		{Last30Days, "2024-02-12", "2024-03-13"},
		{ThisWeek, "2024-03-10", "2024-03-13"},
		{LastWeek, "2024-03-03", "2024-03-09"},
		{LastMonth, "2024-02-01", "2024-02-29"},
		{Label("bogus"), "2024-03-06", "2024-03-13"},
	}
	for _, tc := range cases {
		t.Run(string(tc.label), func(t *testing.T) {
			q := BuildQuery(tc.label, wednesday)
			require.Equal(t, tc.start, q.Get("start"))
			require.Equal(t, tc.end, q.Get("end"))
		})
	}
}

func TestLastMonthAtMonthEnd(t *testing.T) {
	march31 := time.Date(2024, 3, 31, 9, 0, 0, 0, time.UTC)
	q := BuildQuery(LastMonth, march31)
	require.Equal(t, "2024-02-01", q.Get("start"))
	require.Equal(t, "2024-02-29", q.Get("end"))
}

func TestSelectedLabelRoundTrips(t *testing.T) {
	for _, l := range Labels {
		q := BuildQuery(l, wednesday)
		require.Equal(t, l, SelectedLabel(q.Get("start"), q.Get("end"), wednesday), l)
	}
}

func TestSelectedLabelFallbacks(t *testing.T) {
	require.Equal(t, Last7Days, SelectedLabel("", "2024-03-13", wednesday))
	require.Equal(t, Last7Days, SelectedLabel("2024-03-01", "", wednesday))
	require.Equal(t, Last7Days, SelectedLabel("2023-01-01", "2023-02-01", wednesday))
}

func TestResolve(t *testing.T) {
	s, e := Resolve("2024-01-01", "2024-01-31", wednesday)
	require.Equal(t, "2024-01-01", s)
	require.Equal(t, "2024-01-31", e)

	s, e = Resolve("", "", wednesday)
	require.Equal(t, "2024-03-06", s)
	require.Equal(t, "2024-03-13", e)

	s, e = Resolve("2024-02-01", "2024-01-01", wednesday)
	require.Equal(t, "2024-03-06", s)
	require.Equal(t, "2024-03-13", e)

	s, _ = Resolve("not-a-date", "2024-01-01", wednesday)
	require.Equal(t, "2024-03-06", s)
}

func TestValidAndParseDate(t *testing.T) {
	require.True(t, LastWeek.Valid())
	require.False(t, Label("Yesterday").Valid())

	d, err := ParseDate("2024-02-29", nil)
	require.NoError(t, err)
	require.Equal(t, time.February, d.Month())
	_, err = ParseDate("2024-02-30", time.UTC)
	require.Error(t, err)
}
