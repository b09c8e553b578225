package utils

import "testing"

func TestNumberToWords(t *testing.T) {
	tests := []struct {
		num  int
		want string
	}{
		{0, ""},
		{7, "Seven"},
		{19, "Nineteen"},
		{20, "Twenty"},
		{42, "Forty Two"},
		{100, "One Hundred"},
		{236, "Two Hundred Thirty Six"},
		{1000, "One Thousand"},
		{1500, "One Thousand Five Hundred"},
		{99999, "Ninety Nine Thousand Nine Hundred Ninety Nine"},
		{100000, "One Lakh"},
		{250000, "Two Lakh Fifty Thousand"},
		{10000000, "One Crore"},
		{12345678, "One Crore Twenty Three Lakh Forty Five Thousand Six Hundred Seventy Eight"},
	}
	for _, tc := range tests {
		if got := NumberToWords(tc.num); got != tc.want {
			t.Errorf("NumberToWords(%d) = %q, want %q", tc.num, got, tc.want)
		}
	}
}

func TestNumberToCurrencyWords(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "Zero Rupees Only"},
		{236, "Two Hundred Thirty Six Rupees Only"},
		{0.50, "Fifty Paise Only"},
		{118.75, "One Hundred Eighteen Rupees and Seventy Five Paise Only"},
		{100000, "One Lakh Rupees Only"},
	}
	for _, tc := range tests {
		if got := NumberToCurrencyWords(tc.amount); got != tc.want {
			t.Errorf("NumberToCurrencyWords(%v) = %q, want %q", tc.amount, got, tc.want)
		}
	}
}
