package entities

import "testing"

func TestMaterialTypeString(t *testing.T) {
	cases := []struct {
		materialType MaterialType
		want         string
	}{
		{MaterialTypeFood, "food"},
		{MaterialTypeCondiment, "condiment"},
		{MaterialTypeTool, "tool"},
		{MaterialType(0), "unknown"},
		{MaterialType(9), "unknown"},
	}
	for _, c := range cases {
		if got := c.materialType.String(); got != c.want {
			t.Fatalf("MaterialType(%d).String() = %q, want %q", c.materialType, got, c.want)
		}
	}
}

func TestMaterialTypeValid(t *testing.T) {
	for _, valid := range []MaterialType{MaterialTypeFood, MaterialTypeCondiment, MaterialTypeTool} {
		if !valid.Valid() {
			t.Fatalf("expected %v to be valid", valid)
		}
	}
	for _, invalid := range []MaterialType{0, 4, -1} {
		if invalid.Valid() {
			t.Fatalf("expected %d to be invalid", invalid)
		}
	}
}
