package dataset

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
)

const validCSV = `date,orders,revenue
2024-01-01,10,100.00
2024-01-02,5,250.00
2024-01-03,8,99.50
`

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sales.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test CSV: %v", err)
	}
	return path
}

func TestLoadFile(t *testing.T) {
	loader := NewLoader()

	table, err := loader.LoadFile(writeTempCSV(t, validCSV))
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	if table.Len() != 3 {
		t.Fatalf("Expected 3 records, got %d", table.Len())
	}

	first := table.Records[0]
	if first.Date.Format("2006-01-02") != "2024-01-01" {
		t.Errorf("Expected first date 2024-01-01, got %s", first.Date.Format("2006-01-02"))
	}
	if first.Orders != 10 {
		t.Errorf("Expected first orders 10, got %d", first.Orders)
	}
	if !first.Revenue.Equal(decimal.RequireFromString("100.00")) {
		t.Errorf("Expected first revenue 100.00, got %s", first.Revenue)
	}

	// File order is preserved
	if table.Records[2].Orders != 8 {
		t.Errorf("Expected third record orders 8, got %d", table.Records[2].Orders)
	}
}

func TestLoadFileMissing(t *testing.T) {
	loader := NewLoader()

	_, err := loader.LoadFile(filepath.Join(t.TempDir(), "does-not-exist.csv"))
	if !errors.Is(err, ErrDataLoad) {
		t.Errorf("Expected ErrDataLoad for missing file, got %v", err)
	}
}

func TestLoadFileMalformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "missing revenue column",
			content: `date,orders
2024-01-01,10
`,
		},
		{
			name:    "header only",
			content: "date,orders,revenue\n",
		},
		{
			name:    "empty file",
			content: "",
		},
		{
			name: "unparseable date",
			content: `date,orders,revenue
01/02/2024,10,100.00
`,
		},
		{
			name: "non-integer orders",
			content: `date,orders,revenue
2024-01-01,ten,100.00
`,
		},
		{
			name: "negative orders",
			content: `date,orders,revenue
2024-01-01,-3,100.00
`,
		},
		{
			name: "unparseable revenue",
			content: `date,orders,revenue
2024-01-01,10,lots
`,
		},
		{
			name: "ragged rows",
			content: `date,orders,revenue
2024-01-01,10
`,
		},
	}

	loader := NewLoader()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loader.LoadFile(writeTempCSV(t, tt.content))
			if !errors.Is(err, ErrDataLoad) {
				t.Errorf("Expected ErrDataLoad, got %v", err)
			}
		})
	}
}

func TestLoadFileExtraColumnsIgnored(t *testing.T) {
	content := `region,date,orders,revenue,notes
west,2024-01-01,10,100.00,promo day
east,2024-01-02,5,250.00,
`
	loader := NewLoader()

	table, err := loader.LoadFile(writeTempCSV(t, content))
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if table.Len() != 2 {
		t.Errorf("Expected 2 records, got %d", table.Len())
	}
	if table.Records[1].Orders != 5 {
		t.Errorf("Expected second record orders 5, got %d", table.Records[1].Orders)
	}
}

func TestLoadURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/csv")
		w.Write([]byte(validCSV))
	}))
	defer server.Close()

	loader := NewLoader()
	table, err := loader.LoadURL(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("LoadURL failed: %v", err)
	}
	if table.Len() != 3 {
		t.Errorf("Expected 3 records, got %d", table.Len())
	}
}

func TestLoadURLErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer server.Close()

	loader := NewLoader()
	_, err := loader.LoadURL(context.Background(), server.URL)
	if !errors.Is(err, ErrDataLoad) {
		t.Errorf("Expected ErrDataLoad for 404 response, got %v", err)
	}
}
