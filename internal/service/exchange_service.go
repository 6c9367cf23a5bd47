package service

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/barisbulutdemir/raporermak/config"
	"github.com/barisbulutdemir/raporermak/internal/calc"
	"github.com/barisbulutdemir/raporermak/internal/dto"
	"github.com/barisbulutdemir/raporermak/pkg/redis"
)

var ErrRatesUnavailable = errors.New("döviz kurları şu anda alınamıyor")

// maximum calendar days to walk back when the requested day has no
// published bulletin (weekends, official holidays)
const rateFallbackDays = 5

// ExchangeService fetches USD and EUR selling rates from the TCMB daily
// XML bulletin, with a Redis-backed day cache.
type ExchangeService interface {
	Rates(ctx context.Context, day calc.Date) (*dto.ExchangeRatesResponse, error)
}

type exchangeService struct {
	cfg    *config.ExchangeConfig
	rdb    *redis.Client
	client *http.Client
	logger *zap.Logger
}

// NewExchangeService builds the ExchangeService. rdb may be nil, in
// which case every call hits TCMB directly.
func NewExchangeService(cfg *config.ExchangeConfig, rdb *redis.Client, logger *zap.Logger) ExchangeService {
	return &exchangeService{
		cfg:    cfg,
		rdb:    rdb,
		client: &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

// tcmbDocument mirrors the TCMB daily bulletin XML.
type tcmbDocument struct {
	XMLName    xml.Name       `xml:"Tarih_Date"`
	Currencies []tcmbCurrency `xml:"Currency"`
}

type tcmbCurrency struct {
	Code         string `xml:"CurrencyCode,attr"`
	ForexSelling string `xml:"ForexSelling"`
}

func (s *exchangeService) Rates(ctx context.Context, day calc.Date) (*dto.ExchangeRatesResponse, error) {
	cacheKey := "tcmb:rates:" + day.String()

	if s.rdb != nil {
		if cached, err := s.rdb.CacheGet(ctx, cacheKey); err == nil && cached != "" {
			var resp dto.ExchangeRatesResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return &resp, nil
			}
		}
	}

	// Bulletins are published on working days only; walk back to the
	// most recent one.
	var lastErr error
	for i := 0; i <= rateFallbackDays; i++ {
		d := day.AddDays(-i)
		resp, err := s.fetchDay(ctx, d)
		if err != nil {
			lastErr = err
			continue
		}

		if s.rdb != nil {
			if raw, err := json.Marshal(resp); err == nil {
				if err := s.rdb.CacheSet(ctx, cacheKey, string(raw), s.cfg.CacheTTL); err != nil {
					s.logger.Warn("failed to cache exchange rates", zap.Error(err))
				}
			}
		}
		return resp, nil
	}

	s.logger.Error("no exchange rate bulletin found",
		zap.String("date", day.String()),
		zap.Error(lastErr))
	return nil, ErrRatesUnavailable
}

// fetchDay downloads and parses the bulletin for one calendar day.
// TCMB serves it at {base}/YYYYMM/DDMMYYYY.xml.
func (s *exchangeService) fetchDay(ctx context.Context, day calc.Date) (*dto.ExchangeRatesResponse, error) {
	url := fmt.Sprintf("%s/%04d%02d/%02d%02d%04d.xml",
		strings.TrimRight(s.cfg.BaseURL, "/"),
		day.Year, int(day.Month),
		day.Day, int(day.Month), day.Year)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	res, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tcmb: unexpected status %d for %s", res.StatusCode, day)
	}

	body, err := io.ReadAll(io.LimitReader(res.Body, 1<<20))
	if err != nil {
		return nil, err
	}

	var doc tcmbDocument
	if err := xml.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("tcmb: malformed bulletin for %s: %w", day, err)
	}

	resp := &dto.ExchangeRatesResponse{Date: day.Label()}
	for _, cur := range doc.Currencies {
		rate, err := strconv.ParseFloat(strings.TrimSpace(cur.ForexSelling), 64)
		if err != nil {
			continue
		}
		switch cur.Code {
		case "USD":
			resp.USD = rate
		case "EUR":
			resp.EUR = rate
		}
	}
	if resp.USD == 0 || resp.EUR == 0 {
		return nil, fmt.Errorf("tcmb: bulletin for %s missing USD/EUR selling rates", day)
	}
	return resp, nil
}

// Today returns the current day in Turkish local time, falling back to
// UTC when the tz database is unavailable.
func Today() calc.Date {
	loc, err := time.LoadLocation("Europe/Istanbul")
	if err != nil {
		loc = time.UTC
	}
	return calc.DateOf(time.Now().In(loc))
}
