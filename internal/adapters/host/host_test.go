package host_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stage/internal/adapters/host"
	"go.trai.ch/stage/internal/core/domain"
)

func TestHost_Instantiate(t *testing.T) {
	h := host.New()

	inst, err := h.Instantiate(&domain.Resource{Path: "menu.yaml", Name: "Menu"})
	require.NoError(t, err)

	assert.True(t, inst.Alive())
	hi := inst.(*host.Instance)
	assert.Equal(t, "Menu", hi.Resource().Name)
	assert.False(t, hi.Attached())
}

func TestHost_InstantiateNilResource(t *testing.T) {
	h := host.New()

	_, err := h.Instantiate(nil)
	require.ErrorIs(t, err, domain.ErrInstantiateFailed)
}

func TestHost_AttachDetach(t *testing.T) {
	h := host.New()
	inst, err := h.Instantiate(&domain.Resource{Path: "a.yaml"})
	require.NoError(t, err)

	h.Attach(inst)
	assert.Same(t, inst, h.Attached())
	assert.True(t, inst.(*host.Instance).Attached())

	h.Detach(inst)
	assert.Nil(t, h.Attached())
	assert.False(t, inst.(*host.Instance).Attached())
	// Detaching does not dispose.
	assert.True(t, inst.Alive())
}

func TestHost_DetachOtherInstanceKeepsAttached(t *testing.T) {
	h := host.New()
	a, _ := h.Instantiate(&domain.Resource{Path: "a.yaml"})
	b, _ := h.Instantiate(&domain.Resource{Path: "b.yaml"})

	h.Attach(a)
	h.Detach(b)
	assert.Same(t, a, h.Attached())
}

func TestInstance_Dispose(t *testing.T) {
	h := host.New()
	inst, _ := h.Instantiate(&domain.Resource{Path: "a.yaml"})

	inst.Dispose()
	assert.False(t, inst.Alive())
	assert.Nil(t, inst.(*host.Instance).Resource())
}

func TestInstance_Kill(t *testing.T) {
	h := host.New()
	inst, _ := h.Instantiate(&domain.Resource{Path: "a.yaml"})

	inst.(*host.Instance).Kill()
	assert.False(t, inst.Alive())
}

func TestHost_AwaitReady(t *testing.T) {
	t.Run("immediate without delay", func(t *testing.T) {
		h := host.New()
		inst, _ := h.Instantiate(&domain.Resource{Path: "a.yaml"})
		require.NoError(t, h.AwaitReady(context.Background(), inst))
	})

	t.Run("honors cancellation during warm-up", func(t *testing.T) {
		h := host.New().WithReadyDelay(time.Minute)
		inst, _ := h.Instantiate(&domain.Resource{Path: "a.yaml"})

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := h.AwaitReady(ctx, inst)
		require.ErrorIs(t, err, context.Canceled)
	})
}
