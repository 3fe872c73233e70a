package pdffer

import "testing"

func BenchmarkEncodePath(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = EncodePath("invoices", "monthly")
	}
}

func BenchmarkDecodePath(b *testing.B) {
	path := EncodePath("invoices", "monthly")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = DecodePath(path)
	}
}

func BenchmarkSetPayloadFromMap(b *testing.B) {
	tmpl := New[receiptPayload](receiptDef)
	m := map[string]any{"amount": 10, "date": "2024-01-01"}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := tmpl.SetPayloadFromMap(m); err != nil {
			b.Fatal(err)
		}
	}
}
