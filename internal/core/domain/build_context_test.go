package domain_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pack/internal/core/domain"
)

func TestBuildContext_SkipsScriptOutput(t *testing.T) {
	tests := []struct {
		name     string
		full     bool
		rebuild  bool
		scripts  bool
		expected bool
	}{
		{"full build", true, false, false, false},
		{"full rebuild without script changes", true, true, false, false},
		{"rebuild with script changes", false, true, true, false},
		{"rebuild without script changes", false, true, false, true},
		{"first incremental build", false, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bc := &domain.BuildContext{
				RequiresFullBuild: tt.full,
				IsRebuild:         tt.rebuild,
				HasScriptChanges:  tt.scripts,
			}
			assert.Equal(t, tt.expected, bc.SkipsScriptOutput())
		})
	}
}

func TestBuildErrors_Monotonic(t *testing.T) {
	var flag domain.BuildErrors
	assert.False(t, flag.IsSet())
	require.NoError(t, flag.Err())

	flag.Fail(nil)
	assert.True(t, flag.IsSet())
	assert.ErrorIs(t, flag.Err(), domain.ErrBuildFailed)

	cause := errors.New("boom")
	flag.Fail(cause)
	assert.True(t, flag.IsSet())
	assert.ErrorIs(t, flag.Err(), cause)
}

func TestBuildErrors_ConcurrentFail(t *testing.T) {
	var flag domain.BuildErrors
	var wg sync.WaitGroup

	for range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			flag.Fail(errors.New("branch failed"))
			_ = flag.IsSet()
		}()
	}
	wg.Wait()

	assert.True(t, flag.IsSet())
	assert.Error(t, flag.Err())
}

func TestNewBuildContext(t *testing.T) {
	modules := []*domain.Module{{TagName: "a-item"}}
	bc := domain.NewBuildContext(modules)

	assert.True(t, bc.RequiresFullBuild)
	assert.Equal(t, modules, bc.Modules)
	require.NotNil(t, bc.Errors)
	assert.False(t, bc.Errors.IsSet())
}

func TestIsScriptFile(t *testing.T) {
	assert.True(t, domain.IsScriptFile("src/a.ts"))
	assert.True(t, domain.IsScriptFile("src/a.js"))
	assert.False(t, domain.IsScriptFile("src/a.css"))
	assert.False(t, domain.IsScriptFile("assets/logo.svg"))
}

func TestBuildFlags_Enabled(t *testing.T) {
	flags := domain.BuildFlags{Styles: true, Props: true, Member: true}
	assert.Equal(t, []string{"styles", "props", "member"}, flags.Enabled())
	assert.Empty(t, domain.BuildFlags{}.Enabled())
}
