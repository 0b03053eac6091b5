package core

import "testing"

func sampleValues(field Field, n int) []Element {
	values := make([]Element, n)
	for i := range values {
		values[i] = field.FromInt(int64(i*7 + 3))
	}
	return values
}

func TestMerkleTreeQueryRoundTrip(t *testing.T) {
	field := NewMersenne61ExtField()
	values := sampleValues(field, 16)

	tree, err := NewMerkleTree(values)
	if err != nil {
		t.Fatalf("NewMerkleTree: %v", err)
	}
	if tree.NumPairs() != 8 {
		t.Fatalf("NumPairs() = %d, want 8", tree.NumPairs())
	}

	for i := 0; i < tree.NumPairs(); i++ {
		qr, err := tree.Query(i)
		if err != nil {
			t.Fatalf("Query(%d): %v", i, err)
		}
		if !qr.Left.Equal(values[i]) || !qr.Right.Equal(values[i+8]) {
			t.Errorf("Query(%d) returned wrong pair", i)
		}
		if !VerifyQuery(tree.Root(), i, qr) {
			t.Errorf("VerifyQuery(%d) rejected a genuine opening", i)
		}
	}
}

func TestMerkleTreeDetectsTamperedValue(t *testing.T) {
	field := NewFt255Field()
	values := sampleValues(field, 8)

	tree, err := NewMerkleTree(values)
	if err != nil {
		t.Fatalf("NewMerkleTree: %v", err)
	}

	qr, err := tree.Query(1)
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	qr.Left = qr.Left.Add(field.One())

	if VerifyQuery(tree.Root(), 1, qr) {
		t.Errorf("VerifyQuery accepted a tampered leaf value")
	}
}

func TestMerkleTreeDetectsTamperedPath(t *testing.T) {
	field := NewFt255Field()
	values := sampleValues(field, 8)

	tree, err := NewMerkleTree(values)
	if err != nil {
		t.Fatalf("NewMerkleTree: %v", err)
	}

	qr, err := tree.Query(2)
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	tampered := make([]byte, len(qr.Path[0]))
	copy(tampered, qr.Path[0])
	tampered[0] ^= 0xff
	qr.Path[0] = tampered

	if VerifyQuery(tree.Root(), 2, qr) {
		t.Errorf("VerifyQuery accepted a tampered authentication path")
	}
}

func TestMerkleTreeRejectsOddLength(t *testing.T) {
	field := NewFt255Field()
	if _, err := NewMerkleTree(sampleValues(field, 7)); err == nil {
		t.Errorf("expected error for odd-length leaf set")
	}
}

func TestMerkleTreeRejectsEmpty(t *testing.T) {
	if _, err := NewMerkleTree(nil); err == nil {
		t.Errorf("expected error for empty leaf set")
	}
}

func TestMerkleTreeQueryOutOfRange(t *testing.T) {
	field := NewFt255Field()
	tree, err := NewMerkleTree(sampleValues(field, 4))
	if err != nil {
		t.Fatalf("NewMerkleTree: %v", err)
	}
	if _, err := tree.Query(2); err == nil {
		t.Errorf("expected error for out-of-range query index")
	}
	if _, err := tree.Query(-1); err == nil {
		t.Errorf("expected error for negative query index")
	}
}
