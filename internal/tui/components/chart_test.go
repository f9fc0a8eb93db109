package components

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/theirongolddev/taka/internal/model"
	"github.com/theirongolddev/taka/internal/pipeline"
)

func TestSegmentWidthsTileTheBar(t *testing.T) {
	var txs []model.Transaction
	for i, c := range []string{"rent", "food", "bills", "health", "others"} {
		txs = append(txs, model.Transaction{
			Amount:   decimal.NewFromInt(int64(10 + i*7)),
			Type:     model.Expense,
			Category: c,
			Date:     "2024-03-01",
		})
	}
	d := pipeline.ExpenseDistribution(txs, model.English)

	for _, width := range []int{1, 7, 40, 83} {
		sum := 0
		for _, w := range SegmentWidths(d.Slices, width) {
			if w < 0 {
				t.Fatalf("negative segment at width %d", width)
			}
			sum += w
		}
		if sum != width {
			t.Errorf("segments at width %d sum to %d", width, sum)
		}
		if got := lipgloss.Width(DistributionBar(d.Slices, width)); got != width {
			t.Errorf("DistributionBar width = %d, want %d", got, width)
		}
	}
}

func TestDistributionBarEmpty(t *testing.T) {
	if DistributionBar(nil, 20) != "" {
		t.Error("empty distribution should render nothing")
	}
}
