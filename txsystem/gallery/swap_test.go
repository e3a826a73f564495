package gallery_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/artchain-org/artchain-go/gallerystate"
	testgallery "github.com/artchain-org/artchain-go/testutils/gallery"
	"github.com/artchain-org/artchain-go/txsystem/gallery"
	"github.com/artchain-org/artchain-go/types"
)

func Test_SwapAction_Reserve(t *testing.T) {
	t.Run("owner freezes the token", func(t *testing.T) {
		env := testgallery.NewEnv(t, startBalance)
		cid, tid := env.MintToken(t, testgallery.Alice)

		require.NoError(t, env.Module.NewSwapAction(cid, tid).Reserve(testgallery.Alice))
		info, ok := env.Store.ExtendedInfo(cid, tid)
		require.True(t, ok)
		require.True(t, info.Frozen)
	})

	t.Run("non-owner cannot reserve and nothing changes", func(t *testing.T) {
		env := testgallery.NewEnv(t, startBalance)
		cid, tid := env.MintToken(t, testgallery.Alice)

		err := env.Module.NewSwapAction(cid, tid).Reserve(testgallery.Bob)
		require.ErrorIs(t, err, gallery.ErrMustBeTokenOwner)
		require.False(t, env.Module.NewSwapAction(cid, tid).Claim(testgallery.Bob, testgallery.Carol))
		_, ok := env.Store.ExtendedInfo(cid, tid)
		require.False(t, ok, "failed reserve must not materialize the sidecar row")
	})

	t.Run("second reserve is rejected", func(t *testing.T) {
		env := testgallery.NewEnv(t, startBalance)
		cid, tid := env.MintToken(t, testgallery.Alice)
		require.NoError(t, env.Module.NewSwapAction(cid, tid).Reserve(testgallery.Alice))

		err := env.Module.NewSwapAction(cid, tid).Reserve(testgallery.Alice)
		require.ErrorIs(t, err, gallery.ErrTokenFrozen)
	})

	t.Run("unknown token", func(t *testing.T) {
		env := testgallery.NewEnv(t, startBalance)
		err := env.Module.NewSwapAction(0, 0).Reserve(testgallery.Alice)
		require.ErrorIs(t, err, gallery.ErrTokenNotFound)
	})
}

func Test_SwapAction_Claim(t *testing.T) {
	t.Run("claim moves ownership and thaws", func(t *testing.T) {
		env := testgallery.NewEnv(t, startBalance)
		cid, tid := env.MintToken(t, testgallery.Alice)
		action := env.Module.NewSwapAction(cid, tid)
		require.NoError(t, action.Reserve(testgallery.Alice))

		require.True(t, action.Claim(testgallery.Alice, testgallery.Bob))

		token, err := env.Registry.Token(cid, tid)
		require.NoError(t, err)
		require.Equal(t, testgallery.Bob, token.TokenOwner)
		info, _ := env.Store.ExtendedInfo(cid, tid)
		require.False(t, info.Frozen, "completed swap must release custody")

		// the new owner can transfer immediately
		require.NoError(t, env.Module.Transfer(types.Signed(testgallery.Bob), cid, tid, testgallery.Carol))
	})

	t.Run("claim with a stale source fails", func(t *testing.T) {
		env := testgallery.NewEnv(t, startBalance)
		cid, tid := env.MintToken(t, testgallery.Alice)
		require.False(t, env.Module.NewSwapAction(cid, tid).Claim(testgallery.Bob, testgallery.Carol))

		token, err := env.Registry.Token(cid, tid)
		require.NoError(t, err)
		require.Equal(t, testgallery.Alice, token.TokenOwner)
	})

	t.Run("claim on an unknown token fails", func(t *testing.T) {
		env := testgallery.NewEnv(t, startBalance)
		require.False(t, env.Module.NewSwapAction(9, 9).Claim(testgallery.Alice, testgallery.Bob))
	})
}

func Test_SwapAction_Cancel(t *testing.T) {
	t.Run("cancel restores the pre-reserve state", func(t *testing.T) {
		env := testgallery.NewEnv(t, startBalance)
		cid, tid := env.MintToken(t, testgallery.Alice)
		action := env.Module.NewSwapAction(cid, tid)
		require.NoError(t, action.Reserve(testgallery.Alice))

		action.Cancel(testgallery.Alice)

		info, _ := env.Store.ExtendedInfo(cid, tid)
		require.False(t, info.Frozen)
		require.NoError(t, env.Module.Transfer(types.Signed(testgallery.Alice), cid, tid, testgallery.Bob))
	})

	t.Run("cancel by a non-owner is a no-op", func(t *testing.T) {
		env := testgallery.NewEnv(t, startBalance)
		cid, tid := env.MintToken(t, testgallery.Alice)
		action := env.Module.NewSwapAction(cid, tid)
		require.NoError(t, action.Reserve(testgallery.Alice))

		action.Cancel(testgallery.Bob)

		info, _ := env.Store.ExtendedInfo(cid, tid)
		require.True(t, info.Frozen, "custody must survive a stranger's cancel")
	})

	t.Run("cancel on an unknown token does not panic", func(t *testing.T) {
		env := testgallery.NewEnv(t, startBalance)
		env.Module.NewSwapAction(1, 2).Cancel(testgallery.Alice)
	})
}

func Test_SwapAction_Weight(t *testing.T) {
	m := gallery.NewModule(gallerystate.NewRegistry(), gallerystate.NewLedger(), gallerystate.NewStore())
	var action gallery.CustodyAction = m.NewSwapAction(0, 0)
	require.EqualValues(t, gallery.SwapActionWeight, action.Weight())
}
