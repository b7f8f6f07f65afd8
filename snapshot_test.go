package networth

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestSnapshotJSON(t *testing.T) {
	clock := func() time.Time { return time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC) }
	n := 0
	ids := func() uuid.UUID {
		n++
		return uuid.MustParse("00000000-0000-4000-8000-00000000000" + string(rune('0'+n)))
	}
	l := NewLedger(WithClock(clock), WithIDs(ids))
	l.AddAssetOf(Stock, "Stock", d("500.50"))
	l.AddLoan("Mortgage", d("200"))

	got, err := json.Marshal(l.Snapshot())
	if err != nil {
		t.Fatal(err)
	}
	want := `{"currency":"USD",` +
		`"assets":[{"id":"00000000-0000-4000-8000-000000000001","kind":"stock","name":"Stock","currency":"USD","amount":500.5,"created":"2025-06-01T09:30:00Z"}],` +
		`"loans":[{"id":"00000000-0000-4000-8000-000000000002","name":"Mortgage","currency":"USD","amount":200,"created":"2025-06-01T09:30:00Z"}],` +
		`"totalAssets":500.5,"totalLoans":200,"netWorth":300.5,"lastUpdate":"2025-06-01T09:30:00Z"}`
	if string(got) != want {
		t.Errorf("json.Marshal(Snapshot()) =\n%s\nwant\n%s", got, want)
	}
}

func TestSnapshotEmpty(t *testing.T) {
	got, err := json.Marshal(NewLedger().Snapshot())
	if err != nil {
		t.Fatal(err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(got, &decoded); err != nil {
		t.Fatalf("invalid json %s: %v", got, err)
	}
	for _, key := range []string{"assets", "loans"} {
		if list, ok := decoded[key].([]any); !ok || len(list) != 0 {
			t.Errorf("%s = %v want an empty list", key, decoded[key])
		}
	}
}

// TestSnapshotIsACopy checks that later mutations do not leak into a snapshot.
func TestSnapshotIsACopy(t *testing.T) {
	l := NewLedger()
	l.AddAsset("Cash", d("1"))
	s := l.Snapshot()
	l.AddAsset("More", d("2"))
	if len(s.Assets) != 1 || !s.TotalAssets.Equal(USD(1)) {
		t.Errorf("snapshot changed after AddAsset: %d assets, total %v", len(s.Assets), s.TotalAssets)
	}
}
