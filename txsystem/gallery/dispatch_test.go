package gallery_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/artchain-org/artchain-go/cbor"
	testgallery "github.com/artchain-org/artchain-go/testutils/gallery"
	"github.com/artchain-org/artchain-go/txsystem/gallery"
	"github.com/artchain-org/artchain-go/types"
	"github.com/artchain-org/artchain-go/util"
)

func Test_Transaction_Encoding(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		tx, err := gallery.NewTransaction(gallery.TransactionTypeTransfer, &gallery.TransferAttributes{
			CollectionID: 1,
			TokenID:      2,
			Recipient:    testgallery.Bob,
		})
		require.NoError(t, err)

		data, err := tx.Bytes()
		require.NoError(t, err)

		decoded, err := gallery.DecodeTransaction(data)
		require.NoError(t, err)
		require.Equal(t, tx.Type, decoded.Type)
		require.Equal(t, tx.Attributes, decoded.Attributes)
	})

	t.Run("wrong envelope tag is rejected", func(t *testing.T) {
		tx, err := gallery.NewTransaction(gallery.TransactionTypeBurn, &gallery.BurnAttributes{})
		require.NoError(t, err)
		data, err := cbor.MarshalTaggedValue(gallery.TransactionTag+1, tx)
		require.NoError(t, err)

		_, err = gallery.DecodeTransaction(data)
		require.ErrorContains(t, err, "unexpected tag")
	})
}

func Test_Apply(t *testing.T) {
	newTx := func(t *testing.T, txType uint16, attr any) *gallery.Transaction {
		t.Helper()
		tx, err := gallery.NewTransaction(txType, attr)
		require.NoError(t, err)
		return tx
	}

	t.Run("nil transaction", func(t *testing.T) {
		env := testgallery.NewEnv(t, startBalance)
		require.Error(t, env.Module.Apply(types.Root(), nil))
	})

	t.Run("unknown transaction type", func(t *testing.T) {
		env := testgallery.NewEnv(t, startBalance)
		err := env.Module.Apply(types.Root(), &gallery.Transaction{Type: 0xffff})
		require.ErrorContains(t, err, "unknown transaction type")
	})

	t.Run("malformed attributes", func(t *testing.T) {
		env := testgallery.NewEnv(t, startBalance)
		tx := &gallery.Transaction{Type: gallery.TransactionTypeBurn, Attributes: []byte{0xff}}
		err := env.Module.Apply(types.Signed(testgallery.Alice), tx)
		require.ErrorContains(t, err, "decoding attributes")
	})

	t.Run("operation errors pass through", func(t *testing.T) {
		env := testgallery.NewEnv(t, startBalance)
		tx := newTx(t, gallery.TransactionTypeBurn, &gallery.BurnAttributes{CollectionID: 5, TokenID: 5})
		err := env.Module.Apply(types.Signed(testgallery.Alice), tx)
		require.ErrorIs(t, err, gallery.ErrCollectionNotFound)
	})

	t.Run("marketplace scenario end to end", func(t *testing.T) {
		env := testgallery.NewEnv(t, startBalance)

		require.NoError(t, env.Module.Apply(types.Root(),
			newTx(t, gallery.TransactionTypeSetCurator, &gallery.SetCuratorAttributes{Curator: testgallery.Curator})))
		require.NoError(t, env.Module.Apply(types.Signed(testgallery.Alice),
			newTx(t, gallery.TransactionTypeCreateCollection, &gallery.CreateCollectionAttributes{Metadata: []byte("sunsets")})))
		require.NoError(t, env.Module.Apply(types.Signed(testgallery.Alice),
			newTx(t, gallery.TransactionTypeMint, &gallery.MintAttributes{CollectionID: 0, Metadata: []byte("dusk #1")})))
		require.NoError(t, env.Module.Apply(types.Signed(testgallery.Alice),
			newTx(t, gallery.TransactionTypeToggleDisplay, &gallery.ToggleDisplayAttributes{Display: true})))
		require.NoError(t, env.Module.Apply(types.Signed(testgallery.Bob),
			newTx(t, gallery.TransactionTypeAppreciate, &gallery.AppreciateAttributes{Amount: 5})))
		require.NoError(t, env.Module.Apply(types.Signed(testgallery.Bob),
			newTx(t, gallery.TransactionTypeCreateOffer, &gallery.CreateOfferAttributes{Price: 120})))
		require.NoError(t, env.Module.Apply(types.Signed(testgallery.Alice),
			newTx(t, gallery.TransactionTypeAcceptOffer, &gallery.AcceptOfferAttributes{Bidder: testgallery.Bob})))
		require.NoError(t, env.Module.Apply(types.Signed(testgallery.Carol),
			newTx(t, gallery.TransactionTypeReport, &gallery.ReportAttributes{Reason: gallery.ReportReasonDuplicate})))
		require.NoError(t, env.Module.Apply(types.Signed(testgallery.Curator),
			newTx(t, gallery.TransactionTypeClearReport, &gallery.ClearReportAttributes{})))

		// Bob paid the tip and the offer price, owns the token now
		require.EqualValues(t, startBalance-5-120, env.Ledger.FreeBalance(testgallery.Bob))
		require.EqualValues(t, startBalance+5+120, env.Ledger.FreeBalance(testgallery.Alice))
		token, err := env.Registry.Token(0, 0)
		require.NoError(t, err)
		require.Equal(t, testgallery.Bob, token.TokenOwner)
		info, _ := env.Store.ExtendedInfo(0, 0)
		require.True(t, info.DisplayFlag)
		require.Equal(t, gallery.ReportReasonNone, info.Report)

		labels := util.TransformSlice(env.Module.Journal().Events(), gallery.Event.Label)
		require.Equal(t, []string{
			"CollectionCreated", "NFTCreated", "ToggleDisplay", "AppreciationReceived",
			"OfferCreated", "AcceptOffer", "ArtReported", "ArtReportCleared",
		}, labels)
	})
}
