package dto

import (
	"testing"

	"officehub-be/internal/pkg/serverutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveToTrashRequest_Validation(t *testing.T) {
	ok := MoveToTrashRequest{ItemType: "survey", ItemId: uuid.New()}
	assert.NoError(t, serverutils.ValidateRequest(ok))

	err := serverutils.ValidateRequest(MoveToTrashRequest{ItemType: "folder", ItemId: uuid.New()})
	var verr *serverutils.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, "ItemType", verr.Fields[0].Field)

	err = serverutils.ValidateRequest(MoveToTrashRequest{ItemType: "note"})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "ItemId", verr.Fields[0].Field)
}

func TestPurgeManyRequest_Validation(t *testing.T) {
	assert.Error(t, serverutils.ValidateRequest(PurgeManyRequest{}))
	assert.Error(t, serverutils.ValidateRequest(PurgeManyRequest{Ids: []uuid.UUID{}}))
	assert.NoError(t, serverutils.ValidateRequest(PurgeManyRequest{Ids: []uuid.UUID{uuid.New()}}))
}

func TestUpdateAutoDeleteSettingRequest_Validation(t *testing.T) {
	assert.NoError(t, serverutils.ValidateRequest(UpdateAutoDeleteSettingRequest{Period: "1_year"}))
	assert.Error(t, serverutils.ValidateRequest(UpdateAutoDeleteSettingRequest{Period: "weekly"}))
	assert.Error(t, serverutils.ValidateRequest(UpdateAutoDeleteSettingRequest{}))
}
