package settings

import (
	"testing"

	"tableflip.dev/daygrid/pkg/schedule"
	"tableflip.dev/daygrid/pkg/store"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string {
	return t.path
}

func newSettings(t *testing.T) (*Settings, store.Persistence) {
	t.Helper()
	p, err := store.Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	return New(p), p
}

func TestNameRoundTrip(t *testing.T) {
	s, _ := newSettings(t)
	if got := s.Name(); got != "" {
		t.Fatalf("fresh store name = %q, want empty", got)
	}
	if err := s.SetName("Sam"); err != nil {
		t.Fatalf("set name: %v", err)
	}
	if got := s.Name(); got != "Sam" {
		t.Fatalf("name = %q, want Sam", got)
	}
}

func TestBlocksDefaultToPlaceholders(t *testing.T) {
	s, _ := newSettings(t)
	blocks := s.Blocks()
	if len(blocks) != 6 {
		t.Fatalf("blocks has %d entries, want 6", len(blocks))
	}
	for n := 1; n <= 6; n++ {
		if blocks[n] != schedule.Placeholder(n) {
			t.Fatalf("block %d = %q, want placeholder", n, blocks[n])
		}
	}
	if s.BlocksSet() {
		t.Fatal("BlocksSet true with all placeholders")
	}
}

func TestSetBlockMergesWithDefaults(t *testing.T) {
	s, _ := newSettings(t)
	if err := s.SetBlock(2, "eng"); err != nil {
		t.Fatalf("set block: %v", err)
	}
	blocks := s.Blocks()
	if blocks[2] != "eng" {
		t.Fatalf("block 2 = %q, want eng", blocks[2])
	}
	if blocks[3] != schedule.Placeholder(3) {
		t.Fatalf("block 3 = %q, want placeholder", blocks[3])
	}
	if s.BlocksSet() {
		t.Fatal("BlocksSet true with placeholders remaining")
	}

	for n, subj := range map[int]string{1: "met", 3: "spc", 4: "chm", 5: "bio", 6: "acc"} {
		if err := s.SetBlock(n, subj); err != nil {
			t.Fatalf("set block %d: %v", n, err)
		}
	}
	if !s.BlocksSet() {
		t.Fatal("BlocksSet false with every block assigned")
	}
}

func TestMalformedValuesFallBackToDefaults(t *testing.T) {
	s, p := newSettings(t)

	if err := p.Set(KeyInserts, []byte("{not json")); err != nil {
		t.Fatalf("seed malformed value: %v", err)
	}
	ins := s.Inserts()
	if len(ins.P0) != 0 || len(ins.Free) != 0 {
		t.Fatalf("malformed inserts = %+v, want empty", ins)
	}

	if err := p.Set(KeyBlocks, []byte("[]")); err != nil {
		t.Fatalf("seed malformed blocks: %v", err)
	}
	blocks := s.Blocks()
	if blocks[1] != schedule.Placeholder(1) {
		t.Fatalf("malformed blocks leaked: %+v", blocks)
	}
}

func TestInsertsRoundTrip(t *testing.T) {
	s, _ := newSettings(t)

	ins := schedule.NewInserts()
	ins.P0[3] = "chm"
	ins.Free[schedule.FreeKey(5, 2)] = true
	if err := s.SetInserts(ins); err != nil {
		t.Fatalf("set inserts: %v", err)
	}

	got := s.Inserts()
	if got.P0[3] != "chm" {
		t.Fatalf("p0 insert = %+v", got.P0)
	}
	if !got.Free[schedule.FreeKey(5, 2)] {
		t.Fatalf("free insert = %+v", got.Free)
	}
}

func TestOncePerDayFlags(t *testing.T) {
	s, _ := newSettings(t)
	today := "2026-1-28"

	if s.HelpTipShown(today) {
		t.Fatal("help tip shown on a fresh store")
	}
	if err := s.MarkHelpTipShown(today); err != nil {
		t.Fatalf("mark help tip: %v", err)
	}
	if !s.HelpTipShown(today) {
		t.Fatal("help tip not shown after mark")
	}
	// A new day resets the flag without any write.
	if s.HelpTipShown("2026-1-29") {
		t.Fatal("help tip flag leaked into the next day")
	}

	if s.GoodToGoSeen(today) {
		t.Fatal("good-to-go seen on a fresh store")
	}
	if err := s.MarkGoodToGo(today); err != nil {
		t.Fatalf("mark good-to-go: %v", err)
	}
	if !s.GoodToGoSeen(today) {
		t.Fatal("good-to-go not seen after mark")
	}
}

func TestResetAllClearsEverything(t *testing.T) {
	s, p := newSettings(t)

	if err := s.SetName("Sam"); err != nil {
		t.Fatalf("set name: %v", err)
	}
	if err := s.SetBlock(1, "eng"); err != nil {
		t.Fatalf("set block: %v", err)
	}
	if err := s.SetString(KeyClockMode, "24"); err != nil {
		t.Fatalf("set clock: %v", err)
	}
	// Legacy flag from an older store version.
	if err := p.Set("helpTipSeenDate", []byte("2026-1-1")); err != nil {
		t.Fatalf("seed legacy key: %v", err)
	}

	if err := s.ResetAll(); err != nil {
		t.Fatalf("reset: %v", err)
	}

	if s.Name() != "" {
		t.Fatal("name survived reset")
	}
	if s.Blocks()[1] != schedule.Placeholder(1) {
		t.Fatal("blocks survived reset")
	}
	if s.GetString(KeyClockMode) != "" {
		t.Fatal("clock mode survived reset")
	}
	if _, ok := p.Get("helpTipSeenDate"); ok {
		t.Fatal("legacy help flag survived reset")
	}
}

func TestShortcuts(t *testing.T) {
	s, _ := newSettings(t)
	if len(s.Shortcuts()) != 0 {
		t.Fatal("fresh store has shortcuts")
	}
	if err := s.SetShortcuts(map[string]string{"gh": "https://github.com"}); err != nil {
		t.Fatalf("set shortcuts: %v", err)
	}
	if got := s.Shortcuts()["gh"]; got != "https://github.com" {
		t.Fatalf("shortcut = %q", got)
	}
}
