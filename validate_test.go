package pretty_test

import (
	"testing"

	"github.com/fwojciec/pretty"
	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	t.Run("constructed tree is valid", func(t *testing.T) {
		t.Parallel()
		d := pretty.NewGroup(pretty.Then(pretty.NewText("a"), pretty.NewIndent(2, pretty.NewLine()), pretty.HardLine()))
		assert.NoError(t, pretty.Validate(d))
	})

	t.Run("deep trees do not recurse", func(t *testing.T) {
		t.Parallel()
		var d pretty.Doc = pretty.NewText("x")
		for i := 0; i < 100_000; i++ {
			d = pretty.NewIndent(1, pretty.NewConcat(pretty.NewLine(), d))
		}
		assert.NoError(t, pretty.Validate(d))
	})

	t.Run("nil root", func(t *testing.T) {
		t.Parallel()
		err := pretty.Validate(nil)
		assert.ErrorIs(t, err, pretty.ErrNilDoc)
		assert.ErrorIs(t, err, pretty.ErrInvalidDoc)
	})

	t.Run("missing child", func(t *testing.T) {
		t.Parallel()
		err := pretty.Validate(&pretty.Group{Doc: &pretty.Concat{Left: pretty.NewText("a")}})
		assert.ErrorIs(t, err, pretty.ErrNilDoc)
		assert.Contains(t, err.Error(), "*pretty.Concat")
	})

	t.Run("shared node", func(t *testing.T) {
		t.Parallel()
		shared := pretty.NewText("x")
		err := pretty.Validate(pretty.NewConcat(shared, shared))
		assert.ErrorIs(t, err, pretty.ErrSharedNode)
	})

	t.Run("cycle", func(t *testing.T) {
		t.Parallel()
		g := &pretty.Group{}
		g.Doc = pretty.NewIndent(1, g)
		err := pretty.Validate(g)
		assert.ErrorIs(t, err, pretty.ErrSharedNode)
	})

	t.Run("negative indent level", func(t *testing.T) {
		t.Parallel()
		err := pretty.Validate(&pretty.Indent{Level: -2, Doc: pretty.NewText("x")})
		assert.ErrorIs(t, err, pretty.ErrNegativeIndent)
	})

	t.Run("negative break indent", func(t *testing.T) {
		t.Parallel()
		err := pretty.Validate(&pretty.Break{Indent: -1})
		assert.ErrorIs(t, err, pretty.ErrNegativeIndent)
	})
}
