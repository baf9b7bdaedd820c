package model

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestInfoRowRecord(t *testing.T) {
	desc, class := "Hexokinase", "Metabolism; Carbohydrate"
	tests := []struct {
		name string
		row  InfoRow
		want []string
	}{
		{"all fields", InfoRow{Name: "HK1", Description: &desc, Class: &class}, []string{"HK1", "Hexokinase", "Metabolism; Carbohydrate"}},
		{"name only", InfoRow{Name: "HK1"}, []string{"HK1", "", ""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.row.Record()); diff != "" {
				t.Errorf("Record() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestInfoColumnsMatchRecordWidth(t *testing.T) {
	if got := len(InfoRow{}.Record()); got != len(InfoColumns) {
		t.Fatalf("Record() has %d fields, InfoColumns has %d", got, len(InfoColumns))
	}
}
