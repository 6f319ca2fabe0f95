package usecase

import (
	"io"
	"log/slog"
	"reflect"
	"testing"

	"github.com/user/audit-scope/internal/domain"
)

func testDecoder() *RecordDecoder {
	return NewRecordDecoder(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestRecordDecoder_Decode(t *testing.T) {
	d := testDecoder()

	t.Run("Full Record", func(t *testing.T) {
		raw := domain.RawRecord{
			ID:        "1",
			Created:   "5/03/2024 14:22:10.123456+02",
			Email:     "alice@example.com",
			Risk:      "sql-injection",
			RiskLevel: "3",
			Meta:      `{"browser_uuid":"b1","content":"/login","ip_external":"203.0.113.9","ip_internal":["10.0.0.4","10.0.0.5"],"user_agent":"curl/8.5.0"}`,
			Active:    "t",
		}

		record, err := d.Decode(raw)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if record.RiskLevel != 3 {
			t.Errorf("expected risk level 3, got %d", record.RiskLevel)
		}
		if record.BrowserID != "b1" {
			t.Errorf("expected browser id b1, got %q", record.BrowserID)
		}
		if !record.Active {
			t.Error("expected record to be active")
		}
		if record.Content != "/login" || record.UserAgent != "curl/8.5.0" {
			t.Errorf("unexpected metadata fields: %+v", record)
		}
		if !reflect.DeepEqual(record.IPInternal, []string{"10.0.0.4", "10.0.0.5"}) {
			t.Errorf("unexpected internal IPs: %v", record.IPInternal)
		}
	})

	t.Run("Malformed Meta", func(t *testing.T) {
		raw := domain.RawRecord{ID: "2", Meta: `{"browser_uuid":`}
		if _, err := d.Decode(raw); err == nil {
			t.Fatal("expected an error for malformed meta")
		}
	})

	t.Run("Null Meta", func(t *testing.T) {
		raw := domain.RawRecord{ID: "3", Meta: `null`}
		if _, err := d.Decode(raw); err == nil {
			t.Fatal("expected an error for null meta")
		}
	})

	t.Run("Missing Meta Fields Default To Zero Values", func(t *testing.T) {
		raw := domain.RawRecord{ID: "4", RiskLevel: "1", Meta: `{"browser_uuid":"b2"}`}
		record, err := d.Decode(raw)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if record.Content != "" || record.UserAgent != "" || record.IPExternal != "" {
			t.Errorf("expected empty metadata fields, got %+v", record)
		}
		if record.IPInternal != nil {
			t.Errorf("expected nil internal IPs, got %v", record.IPInternal)
		}
	})

	t.Run("Single Internal IP As String", func(t *testing.T) {
		raw := domain.RawRecord{ID: "5", Meta: `{"browser_uuid":"b2","ip_internal":"10.0.0.8"}`}
		record, err := d.Decode(raw)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(record.IPInternal, []string{"10.0.0.8"}) {
			t.Errorf("unexpected internal IPs: %v", record.IPInternal)
		}
	})

	t.Run("Unparseable Risk Level Defaults To Zero", func(t *testing.T) {
		for _, level := range []string{"", "high", "3.5"} {
			raw := domain.RawRecord{ID: "6", RiskLevel: level, Meta: `{}`}
			record, err := d.Decode(raw)
			if err != nil {
				t.Fatalf("unexpected error for level %q: %v", level, err)
			}
			if record.RiskLevel != 0 {
				t.Errorf("expected level 0 for %q, got %d", level, record.RiskLevel)
			}
		}
	})

	t.Run("Inactive Flag", func(t *testing.T) {
		raw := domain.RawRecord{ID: "7", Meta: `{}`, Active: "f"}
		record, err := d.Decode(raw)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if record.Active {
			t.Error("expected record to be inactive")
		}
	})
}

func TestRecordDecoder_DecodeBatch(t *testing.T) {
	d := testDecoder()

	raws := []domain.RawRecord{
		{ID: "1", RiskLevel: "2", Meta: `{"browser_uuid":"b1"}`},
		{ID: "2", RiskLevel: "1", Meta: `not json`},
		{ID: "3", RiskLevel: "0", Meta: `{"browser_uuid":"b2"}`},
	}

	records, failures := d.DecodeBatch(raws)

	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].ID != "1" || records[1].ID != "3" {
		t.Errorf("expected source order preserved, got %s, %s", records[0].ID, records[1].ID)
	}
	if len(failures) != 1 {
		t.Fatalf("expected 1 failure, got %d", len(failures))
	}
	if failures[0].RecordID != "2" {
		t.Errorf("expected failure for record 2, got %q", failures[0].RecordID)
	}
	if failures[0].Err == nil {
		t.Error("expected failure to carry the underlying error")
	}
}
