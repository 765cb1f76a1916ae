package dlis

import "testing"

func TestRecordPools_GetPutReuse(t *testing.T) {
	p := newRecordPools(16)
	buf := p.get()
	if len(buf) != 0 || cap(buf) < 16 {
		t.Fatalf("get() = len %d cap %d, wanted len 0 cap>=16", len(buf), cap(buf))
	}
	buf = append(buf, 1, 2, 3)
	p.put(buf)

	reused := p.get()
	if len(reused) != 0 {
		t.Fatalf("reused buffer should be reset to len 0, got %d", len(reused))
	}
}

func TestRecordPools_DropsOversizedBuffers(t *testing.T) {
	p := newRecordPools(4)
	huge := make([]byte, 0, 4*16+1)
	p.put(huge) // should be silently dropped, not panic
}
