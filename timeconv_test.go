package browserdump

import (
	"testing"
	"time"
)

func TestChromiumMicrosToTime_KnownInstant(t *testing.T) {
	got, ok := chromiumMicrosToTime(microsJan2020)
	if !ok {
		t.Fatal("conversion rejected a valid timestamp")
	}
	want := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("want %v got %v", want, got)
	}
	if s := formatCanonical(got); s != "2020-01-01 00:00:00" {
		t.Fatalf("want canonical %q got %q", "2020-01-01 00:00:00", s)
	}
}

func TestChromiumMicrosToTime_SubSecond(t *testing.T) {
	got, ok := chromiumMicrosToTime(microsJan2020 + 1500000)
	if !ok {
		t.Fatal("conversion rejected a valid timestamp")
	}
	want := time.Date(2020, 1, 1, 0, 0, 1, 500000000, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("want %v got %v", want, got)
	}
}

func TestChromiumMicrosToTime_FarFutureExpiry(t *testing.T) {
	// 9999-12-31T23:59:59Z, a common legacy "never expire" cookie value.
	// Far outside the range a single int64 nanosecond count can hold.
	got, ok := chromiumMicrosToTime(265046774399000000)
	if !ok {
		t.Fatal("conversion rejected a valid timestamp")
	}
	want := time.Date(9999, 12, 31, 23, 59, 59, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("want %v got %v", want, got)
	}
	if s := formatCanonical(got); s != "9999-12-31 23:59:59" {
		t.Fatalf("want canonical %q got %q", "9999-12-31 23:59:59", s)
	}
}

func TestChromiumMicrosToTime_ZeroMeansNever(t *testing.T) {
	if _, ok := chromiumMicrosToTime(0); ok {
		t.Fatal("0 should not convert")
	}
	if _, ok := chromiumMicrosToTime(-1); ok {
		t.Fatal("negative values should not convert")
	}
}

func TestChromiumMicrosFromString(t *testing.T) {
	got, ok := chromiumMicrosFromString(" 13222310400000000 ")
	if !ok {
		t.Fatal("string conversion failed")
	}
	if s := formatCanonical(got); s != "2020-01-01 00:00:00" {
		t.Fatalf("want %q got %q", "2020-01-01 00:00:00", s)
	}

	if _, ok := chromiumMicrosFromString("not-a-number"); ok {
		t.Fatal("garbage should not convert")
	}
	if _, ok := chromiumMicrosFromString(""); ok {
		t.Fatal("empty string should not convert")
	}
}

func TestFormatCanonical_ZeroTime(t *testing.T) {
	if s := formatCanonical(time.Time{}); s != "" {
		t.Fatalf("zero time should render empty, got %q", s)
	}
}
