package value

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// Round-tripping a scalar Value through a Table must reproduce it
// exactly; cmp.Diff gives a field-level diff instead of a single
// bool, which is the point of reaching for it over ==.
func TestValueRoundTripThroughTableIsExact(t *testing.T) {
	cases := []Value{
		String("celes"),
		Integer(9512),
		Real(-5.0001e-53),
		Boolean(true),
	}

	tab := NewTable()
	defer tab.Release()

	for i, want := range cases {
		key := string(rune('a' + i))
		tab.Set(key, want)
		got, ok := tab.Get(key)
		if !ok {
			t.Fatalf("Get(%q) missing after Set", key)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("value round-trip mismatch for %q (-want +got):\n%s", key, diff)
		}
	}
}

func TestTableSetAndGet(t *testing.T) {
	tab := NewTable()
	defer tab.Release()

	if !tab.Set("name", String("celes")) {
		t.Fatalf("first Set should succeed")
	}
	if tab.Set("name", String("other")) {
		t.Fatalf("Set on an existing key should report false")
	}
	if got := tab.GetString("name"); got != "celes" {
		t.Fatalf("GetString = %q, want %q", got, "celes")
	}
}

func TestTableGetMissingReturnsZero(t *testing.T) {
	tab := NewTable()
	defer tab.Release()

	if got := tab.GetString("missing"); got != "" {
		t.Fatalf("GetString on missing key = %q, want empty", got)
	}
	if got := tab.GetInt("missing"); got != 0 {
		t.Fatalf("GetInt on missing key = %d, want 0", got)
	}
	if got := tab.GetBool("missing"); got != false {
		t.Fatalf("GetBool on missing key = %v, want false", got)
	}
	if got := tab.GetTable("missing"); got != nil {
		t.Fatalf("GetTable on missing key = %v, want nil", got)
	}
}

func TestTableGetWrongKindReturnsZero(t *testing.T) {
	tab := NewTable()
	defer tab.Release()
	tab.Set("n", Integer(42))

	if got := tab.GetString("n"); got != "" {
		t.Fatalf("GetString on an integer key = %q, want empty", got)
	}
}

func TestTablePairAtInsertionOrder(t *testing.T) {
	tab := NewTable()
	defer tab.Release()
	tab.Set("b", Integer(2))
	tab.Set("a", Integer(1))

	k0, v0, ok := tab.PairAt(0)
	if !ok || k0 != "b" || v0.GetInt() != 2 {
		t.Fatalf("PairAt(0) = %q/%v, want b/2", k0, v0)
	}
	k1, v1, ok := tab.PairAt(1)
	if !ok || k1 != "a" || v1.GetInt() != 1 {
		t.Fatalf("PairAt(1) = %q/%v, want a/1", k1, v1)
	}
	if _, _, ok := tab.PairAt(2); ok {
		t.Fatalf("PairAt out of range should report false")
	}
}

func TestTableRefCounting(t *testing.T) {
	tab := NewTable()
	if tab.RefCount() != 1 {
		t.Fatalf("new table refcount = %d, want 1", tab.RefCount())
	}
	tab.AddRef()
	if tab.RefCount() != 2 {
		t.Fatalf("refcount after AddRef = %d, want 2", tab.RefCount())
	}
	tab.Release()
	if tab.RefCount() != 1 {
		t.Fatalf("refcount after one Release = %d, want 1", tab.RefCount())
	}
	tab.Release()
	if tab.RefCount() != 0 {
		t.Fatalf("refcount after second Release = %d, want 0", tab.RefCount())
	}
	// Further releases are a no-op, not a negative count.
	tab.Release()
	if tab.RefCount() != 0 {
		t.Fatalf("refcount should stay at 0 once released, got %d", tab.RefCount())
	}
}

func TestTableReleaseCascadesToChildren(t *testing.T) {
	child := NewTable()
	child.Set("x", Integer(1))

	parent := NewTable()
	parent.Set("child", TableValue(child))

	parent.Release()
	if child.RefCount() != 0 {
		t.Fatalf("releasing the parent should release the child table, got refcount %d", child.RefCount())
	}
}

func TestArrayAppendAndGet(t *testing.T) {
	arr := NewArray()
	defer arr.Release()
	arr.Append(String("h1"))
	arr.Append(String("h2"))

	if arr.Count() != 2 {
		t.Fatalf("Count = %d, want 2", arr.Count())
	}
	if got := arr.GetString(0); got != "h1" {
		t.Fatalf("GetString(0) = %q, want h1", got)
	}
	if got := arr.GetString(1); got != "h2" {
		t.Fatalf("GetString(1) = %q, want h2", got)
	}
	if got := arr.GetString(5); got != "" {
		t.Fatalf("GetString out of range = %q, want empty", got)
	}
}

func TestArrayIsTableArray(t *testing.T) {
	valueArr := NewArray()
	defer valueArr.Release()
	valueArr.Append(Integer(1))
	if valueArr.IsTableArray() {
		t.Fatalf("array of integers should not be a table-array")
	}

	tableArr := NewArray()
	defer tableArr.Release()
	t1 := NewTable()
	tableArr.Append(TableValue(t1))
	if !tableArr.IsTableArray() {
		t.Fatalf("array whose first element is a table should be a table-array")
	}
}

func TestInvalidValueIsZeroKind(t *testing.T) {
	if Invalid.Type() != KindInvalid {
		t.Fatalf("Invalid.Type() = %v, want KindInvalid", Invalid.Type())
	}
	if Invalid.GetString() != "" || Invalid.GetInt() != 0 || Invalid.GetBool() != false {
		t.Fatalf("Invalid should yield zero values for every typed getter")
	}
}
