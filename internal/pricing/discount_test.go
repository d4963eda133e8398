package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveDiscount(t *testing.T) {
	tests := []struct {
		name  string
		rules []DiscountRule
		hour  int
		want  float64
	}{
		{
			name:  "No rules means no discount",
			rules: nil,
			hour:  10,
			want:  0,
		},
		{
			name: "First match wins over a stronger later rule",
			rules: []DiscountRule{
				{FromHour: 9, ToHour: 12, Percentage: 10},
				{AllHours: true, Percentage: 20},
			},
			hour: 10,
			want: 10,
		},
		{
			name: "All-hours rule matches any hour",
			rules: []DiscountRule{
				{AllHours: true, Percentage: 15},
			},
			hour: 23,
			want: 15,
		},
		{
			name: "ToHour is exclusive",
			rules: []DiscountRule{
				{FromHour: 9, ToHour: 12, Percentage: 10},
			},
			hour: 12,
			want: 0,
		},
		{
			name: "FromHour is inclusive",
			rules: []DiscountRule{
				{FromHour: 9, ToHour: 12, Percentage: 10},
			},
			hour: 9,
			want: 10,
		},
		{
			name: "Falls through to a later matching rule",
			rules: []DiscountRule{
				{FromHour: 6, ToHour: 8, Percentage: 30},
				{FromHour: 18, ToHour: 22, Percentage: 25},
			},
			hour: 19,
			want: 25,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveDiscount(tt.rules, tt.hour)
			assert.Equal(t, tt.want, got)
		})
	}
}
