package repository

import "testing"

func TestNormalizePageRequest(t *testing.T) {
	cases := []struct {
		in   PageRequest
		want PageRequest
	}{
		{PageRequest{}, PageRequest{Page: DefaultPage, PageSize: DefaultPageSize}},
		{PageRequest{Page: -3, PageSize: -1}, PageRequest{Page: DefaultPage, PageSize: DefaultPageSize}},
		{PageRequest{Page: 2, PageSize: 10}, PageRequest{Page: 2, PageSize: 10}},
		{PageRequest{Page: 1, PageSize: 10000}, PageRequest{Page: 1, PageSize: MaxPageSize}},
	}
	for i, tc := range cases {
		if got := normalizePageRequest(tc.in); got != tc.want {
			t.Fatalf("case %d: got %+v want %+v", i, got, tc.want)
		}
	}
}

func TestCalcTotalPages(t *testing.T) {
	cases := []struct {
		total    int64
		pageSize int
		want     int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{25, 10, 3},
		{5, 0, 0},
	}
	for i, tc := range cases {
		if got := calcTotalPages(tc.total, tc.pageSize); got != tc.want {
			t.Fatalf("case %d: got %d want %d", i, got, tc.want)
		}
	}
}
