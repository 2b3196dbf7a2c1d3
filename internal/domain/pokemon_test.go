package domain

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func strPtr(s string) *string { return &s }

func raw(s string) json.RawMessage { return json.RawMessage(s) }

func decodePayload(t *testing.T, body string) PokemonPayload {
	t.Helper()
	var p PokemonPayload
	if err := json.Unmarshal([]byte(body), &p); err != nil {
		t.Fatalf("failed to decode payload: %v", err)
	}
	return p
}

func TestProject(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want PokemonInfo
	}{
		{
			name: "full payload",
			body: `{"name":"ditto","types":[{"type":{"name":"normal"}}],"height":3,"weight":40,"abilities":[{"ability":{"name":"limber"}}]}`,
			want: PokemonInfo{
				Name:         "ditto",
				Type:         strPtr("normal"),
				Height:       raw("3"),
				Weight:       raw("40"),
				FirstAbility: strPtr("limber"),
			},
		},
		{
			name: "first type and ability win",
			body: `{"name":"bulbasaur","types":[{"slot":1,"type":{"name":"grass"}},{"slot":2,"type":{"name":"poison"}}],"abilities":[{"ability":{"name":"overgrow"}},{"ability":{"name":"chlorophyll"},"is_hidden":true}]}`,
			want: PokemonInfo{
				Name:         "bulbasaur",
				Type:         strPtr("grass"),
				FirstAbility: strPtr("overgrow"),
			},
		},
		{
			name: "missing arrays and measurements",
			body: `{"name":"missingno"}`,
			want: PokemonInfo{Name: "missingno"},
		},
		{
			name: "empty arrays",
			body: `{"name":"missingno","types":[],"abilities":[]}`,
			want: PokemonInfo{Name: "missingno"},
		},
		{
			name: "elements without nested objects",
			body: `{"name":"missingno","types":[{}],"abilities":[{"slot":1}]}`,
			want: PokemonInfo{Name: "missingno"},
		},
		{
			name: "explicit nulls",
			body: `{"name":"missingno","types":null,"height":null,"weight":null,"abilities":null}`,
			want: PokemonInfo{Name: "missingno"},
		},
		{
			name: "fractional measurements pass through verbatim",
			body: `{"name":"ditto","height":3.5,"weight":40}`,
			want: PokemonInfo{Name: "ditto", Height: raw("3.5"), Weight: raw("40")},
		},
		{
			name: "non numeric measurements pass through verbatim",
			body: `{"name":"ditto","height":"3","weight":{"value":40,"unit":"hg"}}`,
			want: PokemonInfo{Name: "ditto", Height: raw(`"3"`), Weight: raw(`{"value":40,"unit":"hg"}`)},
		},
		{
			name: "boolean measurement passes through",
			body: `{"name":"ditto","height":true}`,
			want: PokemonInfo{Name: "ditto", Height: raw("true")},
		},
		{
			name: "name passed through without normalization",
			body: `{"name":"Mr-Mime"}`,
			want: PokemonInfo{Name: "Mr-Mime"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Project(decodePayload(t, tt.body))
			if err != nil {
				t.Fatalf("Project() unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Project() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestProjectMissingName(t *testing.T) {
	t.Parallel()

	for _, body := range []string{`{}`, `{"name":""}`, `{"name":null,"height":3}`, `null`} {
		_, err := Project(decodePayload(t, body))
		if !errors.Is(err, ErrMissingName) {
			t.Errorf("Project(%s) error = %v, want ErrMissingName", body, err)
		}
	}
}

// TestProjectIsDeterministic checks that projecting the same payload twice
// yields identical output.
func TestProjectIsDeterministic(t *testing.T) {
	t.Parallel()

	p := decodePayload(t, `{"name":"ditto","types":[{"type":{"name":"normal"}}],"height":3,"weight":40,"abilities":[{"ability":{"name":"limber"}}]}`)

	first, err := Project(p)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Project(p)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("Project() not deterministic (-first +second):\n%s", diff)
	}
}

func TestPokemonInfoJSON(t *testing.T) {
	t.Parallel()

	info, err := Project(decodePayload(t, `{"name":"ditto","types":[{"type":{"name":"normal"}}],"height":3,"weight":40,"abilities":[{"ability":{"name":"limber"}}]}`))
	if err != nil {
		t.Fatal(err)
	}
	out, err := json.Marshal(info)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"name":"ditto","type":"normal","height":3,"weight":40,"first_ability":"limber"}`
	if string(out) != want {
		t.Errorf("json = %s, want %s", out, want)
	}

	quoted, err := Project(decodePayload(t, `{"name":"ditto","height":"3","weight":40}`))
	if err != nil {
		t.Fatal(err)
	}
	out, err = json.Marshal(quoted)
	if err != nil {
		t.Fatal(err)
	}
	wantQuoted := `{"name":"ditto","type":null,"height":"3","weight":40,"first_ability":null}`
	if string(out) != wantQuoted {
		t.Errorf("json = %s, want %s", out, wantQuoted)
	}

	empty, err := json.Marshal(PokemonInfo{Name: "missingno"})
	if err != nil {
		t.Fatal(err)
	}
	wantEmpty := `{"name":"missingno","type":null,"height":null,"weight":null,"first_ability":null}`
	if string(empty) != wantEmpty {
		t.Errorf("json = %s, want %s", empty, wantEmpty)
	}
}
