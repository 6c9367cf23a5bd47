package service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/barisbulutdemir/raporermak/config"
	"github.com/barisbulutdemir/raporermak/internal/calc"
)

const tcmbBulletin = `<?xml version="1.0" encoding="UTF-8"?>
<Tarih_Date Tarih="22.05.2026" Date="05/22/2026">
  <Currency CurrencyCode="USD">
    <Unit>1</Unit>
    <ForexBuying>41.1000</ForexBuying>
    <ForexSelling>41.5000</ForexSelling>
  </Currency>
  <Currency CurrencyCode="EUR">
    <Unit>1</Unit>
    <ForexBuying>44.8000</ForexBuying>
    <ForexSelling>45.2000</ForexSelling>
  </Currency>
</Tarih_Date>`

func newExchangeService(baseURL string) ExchangeService {
	cfg := &config.ExchangeConfig{
		BaseURL:  baseURL,
		Timeout:  5 * time.Second,
		CacheTTL: time.Hour,
	}
	return NewExchangeService(cfg, nil, zap.NewNop())
}

func TestExchangeRates_ParsesBulletin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/202605/22052026.xml" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(tcmbBulletin))
	}))
	defer srv.Close()

	svc := newExchangeService(srv.URL)
	rates, err := svc.Rates(context.Background(), calc.NewDate(2026, 5, 22))
	if err != nil {
		t.Fatalf("Rates failed: %v", err)
	}
	if rates.USD != 41.5 {
		t.Errorf("USD = %v, want 41.5", rates.USD)
	}
	if rates.EUR != 45.2 {
		t.Errorf("EUR = %v, want 45.2", rates.EUR)
	}
	if rates.Date != "22.05.2026" {
		t.Errorf("Date = %q, want 22.05.2026", rates.Date)
	}
}

func TestExchangeRates_FallsBackToPreviousWorkingDay(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// only Friday the 22nd has a bulletin
		if r.URL.Path == "/202605/22052026.xml" {
			w.Write([]byte(tcmbBulletin))
			return
		}
		http.NotFound(w, r)
	}))
	defer srv.Close()

	svc := newExchangeService(srv.URL)
	// Sunday: walks back through Saturday to Friday's bulletin
	rates, err := svc.Rates(context.Background(), calc.NewDate(2026, 5, 24))
	if err != nil {
		t.Fatalf("Rates failed: %v", err)
	}
	if rates.Date != "22.05.2026" {
		t.Errorf("Date = %q, want the Friday bulletin", rates.Date)
	}
}

func TestExchangeRates_UnavailableAfterFallbackWindow(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	svc := newExchangeService(srv.URL)
	_, err := svc.Rates(context.Background(), calc.NewDate(2026, 5, 24))
	if !errors.Is(err, ErrRatesUnavailable) {
		t.Errorf("err = %v, want ErrRatesUnavailable", err)
	}
}

func TestExchangeRates_MalformedBulletin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<Tarih_Date><Currency CurrencyCode=\"USD\"><ForexSelling>oops</ForexSelling></Currency></Tarih_Date>"))
	}))
	defer srv.Close()

	svc := newExchangeService(srv.URL)
	if _, err := svc.Rates(context.Background(), calc.NewDate(2026, 5, 22)); !errors.Is(err, ErrRatesUnavailable) {
		t.Errorf("err = %v, want ErrRatesUnavailable", err)
	}
}
