package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestBoxWithin(t *testing.T) {
	tests := []struct {
		name string
		box  Box
		want bool
	}{
		{"full canvas", Box{0, 0, CanvasWidth, CanvasHeight}, true},
		{"float drift", Box{0.25, 0.95 + 2.3, 3.1, 2.1}, true},
		{"negative x", Box{-0.1, 0, 1, 1}, false},
		{"past right edge", Box{9.5, 0, 0.6, 1}, false},
		{"past bottom edge", Box{0, 5, 1, 0.7}, false},
		{"negative size", Box{1, 1, -1, 1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.box.Within(CanvasWidth, CanvasHeight))
		})
	}
}

func TestColorValid(t *testing.T) {
	assert.True(t, Color("028090").Valid())
	assert.True(t, Color("a5f3fc").Valid())
	assert.False(t, Color("#02809").Valid())
	assert.False(t, Color("GGGGGG").Valid())
	assert.False(t, Color("").Valid())
	assert.Equal(t, "FFA5F3FC", Color("a5f3fc").ARGB())
}

func TestStructureCountsSlidesElementsAndTables(t *testing.T) {
	b := New()
	s1 := b.AddSlide("FFFFFF")
	b.AddElement(s1, Rect(0, 0, 1, 1))
	b.AddElement(s1, Table(0, 1, 4, 2, []TableRow{Row("a", "b"), Row("c", "d"), Row("e", "f")}))
	s2 := b.AddSlide("0D2137")
	b.AddElement(s2, Text(0, 0, 1, 1, "x", FontSpec{}))

	st := b.Deck().Structure()
	assert.Equal(t, 2, st.Slides)
	assert.Equal(t, []int{2, 1}, st.Elements)
	assert.Equal(t, []int{3}, st.TableRows)
	assert.Equal(t, 1, s1.Count(KindTable))
	assert.Len(t, s1.Tables(), 1)
}

func TestSlideTexts(t *testing.T) {
	b := New()
	s := b.AddSlide("FFFFFF")
	b.AddElement(s, Runs(0, 0, 1, 1, Bullets([]string{"one", "two"}), FontSpec{}))
	b.AddElement(s, Text(0, 0, 1, 1, "   ", FontSpec{}))

	assert.Equal(t, []string{"one\ntwo"}, s.Texts())
}

func TestBulletsBreakAllButLast(t *testing.T) {
	runs := Bullets([]string{"a", "b", "c"})
	for i, r := range runs {
		assert.True(t, r.Bullet)
		assert.Equal(t, i < 2, r.BreakLine, "run %d", i)
	}
}

// Property: Validate agrees with Box.Within for random rectangles.
func TestValidateMatchesWithin(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		x := rapid.Float64Range(-1, 11).Draw(t, "x")
		y := rapid.Float64Range(-1, 6).Draw(t, "y")
		w := rapid.Float64Range(0, 11).Draw(t, "w")
		h := rapid.Float64Range(0, 6).Draw(t, "h")

		b := New()
		s := b.AddSlide("FFFFFF")
		el := Rect(x, y, w, h)
		b.AddElement(s, el)

		inside := el.Box.Within(CanvasWidth, CanvasHeight)
		err := b.Deck().Validate()
		if inside && err != nil {
			t.Fatalf("box %+v inside canvas but Validate = %v", el.Box, err)
		}
		if !inside && err == nil {
			t.Fatalf("box %+v outside canvas but Validate passed", el.Box)
		}
	})
}
