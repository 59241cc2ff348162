package parsers

import (
	"reflect"
	"testing"

	"twstock"
)

func TestSearchStocks(t *testing.T) {
	catalog := []twstock.StockInfo{
		{ID: "0050", Name: "元大台灣50", Type: "twse", Industry: "ETF"},
		{ID: "0056", Name: "元大高股息", Type: "twse", Industry: "ETF"},
		{ID: "2330", Name: "台積電", Type: "twse", Industry: "半導體業"},
	}

	type args struct {
		term string
	}
	tests := []struct {
		name string
		args args
		want []string // expected ids
	}{
		{
			name: "exact id wins outright",
			args: args{term: "0050"},
			want: []string{"0050"},
		},
		{
			name: "partial name",
			args: args{term: "台積"},
			want: []string{"2330"},
		},
		{
			name: "partial name with several hits",
			args: args{term: "元大"},
			want: []string{"0050", "0056"},
		},
		{
			name: "empty term returns everything",
			args: args{term: ""},
			want: []string{"0050", "0056", "2330"},
		},
		{
			name: "no match",
			args: args{term: "鴻海"},
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for _, s := range SearchStocks(catalog, tt.args.term) {
				got = append(got, s.ID)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SearchStocks(%q) = %v, want %v", tt.args.term, got, tt.want)
			}
		})
	}
}
