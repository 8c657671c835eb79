package freight

import "testing"

func TestNormalizeTaggedStrings(t *testing.T) {
	raw := []interface{}{"truck", "  carreta  ", ""}

	got := NormalizeTagged(raw)

	if len(got) != 2 {
		t.Fatalf("expected 2 options, got %d", len(got))
	}
	if got[0].Tag != "truck" || got[0].Label != "truck" || !got[0].Selected {
		t.Errorf("unexpected first option: %+v", got[0])
	}
	if got[1].Tag != "carreta" {
		t.Errorf("expected trimmed tag 'carreta', got %q", got[1].Tag)
	}
}

func TestNormalizeTaggedObjectKeys(t *testing.T) {
	cases := []struct {
		name string
		obj  map[string]interface{}
		tag  string
	}{
		{"tag key", map[string]interface{}{"tag": "truck"}, "truck"},
		{"label key", map[string]interface{}{"label": "Truck"}, "Truck"},
		{"nome key", map[string]interface{}{"nome": "toco"}, "toco"},
		{"type key", map[string]interface{}{"type": "bitruck"}, "bitruck"},
		{"value key", map[string]interface{}{"value": "vlc"}, "vlc"},
		{"categoria key", map[string]interface{}{"categoria": "carreta"}, "carreta"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := NormalizeTagged([]interface{}{tc.obj})
			if len(got) != 1 {
				t.Fatalf("expected 1 option, got %d", len(got))
			}
			if got[0].Tag != tc.tag {
				t.Errorf("expected tag %q, got %q", tc.tag, got[0].Tag)
			}
		})
	}
}

func TestNormalizeTaggedKeyPrecedence(t *testing.T) {
	raw := []interface{}{
		map[string]interface{}{"tag": "truck", "nome": "Caminhao Truck"},
	}

	got := NormalizeTagged(raw)

	if len(got) != 1 {
		t.Fatalf("expected 1 option, got %d", len(got))
	}
	if got[0].Tag != "truck" {
		t.Errorf("tag key should win, got %q", got[0].Tag)
	}
	if got[0].Label != "Caminhao Truck" {
		t.Errorf("label should come from nome, got %q", got[0].Label)
	}
}

func TestNormalizeTaggedDropsUnrecognizable(t *testing.T) {
	raw := []interface{}{
		map[string]interface{}{"weight": 12.5},
		42,
		nil,
		map[string]interface{}{"tag": "truck"},
	}

	got := NormalizeTagged(raw)

	if len(got) != 1 {
		t.Fatalf("expected only the recognizable entry, got %d", len(got))
	}
}

func TestNormalizeTaggedSelectedFlag(t *testing.T) {
	raw := []interface{}{
		map[string]interface{}{"tag": "truck", "selected": false},
		map[string]interface{}{"tag": "toco", "selected": true},
		map[string]interface{}{"tag": "vlc"},
	}

	got := NormalizeTagged(raw)

	if len(got) != 3 {
		t.Fatalf("expected 3 options, got %d", len(got))
	}
	if got[0].Selected {
		t.Error("explicit selected=false should be kept")
	}
	if !got[1].Selected || !got[2].Selected {
		t.Error("selected should default to true when absent")
	}
}

func TestIntersectsTags(t *testing.T) {
	options := []TaggedOption{
		{Tag: "Truck", Selected: true},
		{Tag: "carreta", Selected: false},
	}

	if !IntersectsTags(options, TagSet([]string{"truck"})) {
		t.Error("expected case-insensitive match on selected tag")
	}
	if IntersectsTags(options, TagSet([]string{"carreta"})) {
		t.Error("unselected options must not match")
	}
	if IntersectsTags(options, TagSet([]string{"sider"})) {
		t.Error("no overlap expected")
	}
	if IntersectsTags(nil, TagSet([]string{"truck"})) {
		t.Error("empty options never intersect")
	}
}

func TestRenumberStops(t *testing.T) {
	stops := []Stop{
		{Position: 7, City: "Campinas"},
		{Position: 2, City: "Jundiai"},
		{Position: 9, City: "Sorocaba"},
	}

	RenumberStops(stops)

	for i, s := range stops {
		if s.Position != i+1 {
			t.Errorf("stop %d: expected position %d, got %d", i, i+1, s.Position)
		}
	}
}
