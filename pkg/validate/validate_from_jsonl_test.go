package validate

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestOrdersFromJSONLStream_Mixed(t *testing.T) {
	ctx := context.Background()
	validator := NewOrderValidator()

	input := strings.Join([]string{
		validOrderJSON(),
		"", // пустые строки игнорируются
		`{"payment":"card","email":"broken"`,
		`{"payment":"card","email":"no-at-sign","phone":"+7 999 000 12 34","address":"Москва, Тверская 1","total":1,"items":["p1"]}`,
		validOrderJSON(),
	}, "\n")

	var out bytes.Buffer
	res, err := OrdersFromJSONLStream(ctx, validator, strings.NewReader(input), &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.ValidLinesCount != 2 || res.InvalidLinesCount != 2 {
		t.Fatalf("unexpected result: %+v", res)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 canonical lines, got %d", len(lines))
	}
}

func TestOrdersFromJSONLStream_EmptyInput(t *testing.T) {
	ctx := context.Background()
	validator := NewOrderValidator()

	var out bytes.Buffer
	res, err := OrdersFromJSONLStream(ctx, validator, strings.NewReader(""), &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.ValidLinesCount != 0 || res.InvalidLinesCount != 0 {
		t.Fatalf("unexpected result: %+v", res)
	}
	if out.Len() != 0 {
		t.Fatalf("expected empty output, got %q", out.String())
	}
}
