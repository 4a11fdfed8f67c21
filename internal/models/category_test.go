package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int { return &i }

func TestCategory_Validate(t *testing.T) {
	tests := []struct {
		name     string
		category Category
		wantErr  error
	}{
		{
			name:     "valid variable category",
			category: Category{Name: "Groceries", CategoryType: CategoryTypeVariable},
		},
		{
			name:     "valid fixed category with due day",
			category: Category{Name: "Rent", CategoryType: CategoryTypeFixed, DueDay: intPtr(1)},
		},
		{
			name:     "valid income category",
			category: Category{Name: "Salary", CategoryType: CategoryTypeIncome},
		},
		{
			name:     "empty name",
			category: Category{CategoryType: CategoryTypeVariable},
			wantErr:  ErrCategoryNameEmpty,
		},
		{
			name:     "unknown type",
			category: Category{Name: "Stuff", CategoryType: "weekly"},
			wantErr:  ErrInvalidCategoryType,
		},
		{
			name:     "due day zero",
			category: Category{Name: "Rent", CategoryType: CategoryTypeFixed, DueDay: intPtr(0)},
			wantErr:  ErrInvalidDueDay,
		},
		{
			name:     "due day 32",
			category: Category{Name: "Rent", CategoryType: CategoryTypeFixed, DueDay: intPtr(32)},
			wantErr:  ErrInvalidDueDay,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.category.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCategory_EffectiveDueDate(t *testing.T) {
	tests := []struct {
		name     string
		category Category
		month    Month
		want     *time.Time
	}{
		{
			name:     "no due date configured",
			category: Category{Name: "Fun", CategoryType: CategoryTypeVariable},
			month:    NewMonth(2024, time.April),
			want:     nil,
		},
		{
			name:     "plain day within range",
			category: Category{Name: "Rent", DueDay: intPtr(5)},
			month:    NewMonth(2024, time.April),
			want:     timePtr(2024, time.April, 5),
		},
		{
			name:     "day 31 clamps to April 30",
			category: Category{Name: "Internet", DueDay: intPtr(31)},
			month:    NewMonth(2024, time.April),
			want:     timePtr(2024, time.April, 30),
		},
		{
			name:     "day 29 clamps in non-leap February",
			category: Category{Name: "Phone", DueDay: intPtr(29)},
			month:    NewMonth(2023, time.February),
			want:     timePtr(2023, time.February, 28),
		},
		{
			name:     "day 29 holds in leap February",
			category: Category{Name: "Phone", DueDay: intPtr(29)},
			month:    NewMonth(2024, time.February),
			want:     timePtr(2024, time.February, 29),
		},
		{
			name:     "last-day flag overrides explicit day",
			category: Category{Name: "Mortgage", DueDay: intPtr(15), DueLastDay: true},
			month:    NewMonth(2024, time.June),
			want:     timePtr(2024, time.June, 30),
		},
		{
			name:     "last-day flag in leap February",
			category: Category{Name: "Mortgage", DueLastDay: true},
			month:    NewMonth(2024, time.February),
			want:     timePtr(2024, time.February, 29),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.category.EffectiveDueDate(tt.month)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func timePtr(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}
