package ledger_test

import (
	"testing"

	"github.com/barpos/comanda_backend/internal/apperrors"
	"github.com/barpos/comanda_backend/internal/core/domain"
	"github.com/barpos/comanda_backend/internal/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordName(t *testing.T) {
	name := ledger.RecordName(domain.LedgerKey{TabID: 12, OperatorID: 3, SequenceID: 5001})
	assert.Equal(t, "00012-03-05001.cv", name)
	assert.Equal(t, "00012-", ledger.TabPrefix(12))
}

func TestParseRecordName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    domain.LedgerKey
		wantErr bool
	}{
		{name: "canonical", input: "00012-03-05001.cv", want: domain.LedgerKey{TabID: 12, OperatorID: 3, SequenceID: 5001}},
		{name: "with directory", input: "data/vendas/00001-01-00007.cv", want: domain.LedgerKey{TabID: 1, OperatorID: 1, SequenceID: 7}},
		{name: "wider than padding", input: "123456-01-123456.cv", want: domain.LedgerKey{TabID: 123456, OperatorID: 1, SequenceID: 123456}},
		{name: "too few fields", input: "00012-05001.cv", wantErr: true},
		{name: "non numeric sequence", input: "00012-03-abcde.cv", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ledger.ParseRecordName(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrParse)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncodeLine(t *testing.T) {
	line := domain.LedgerLine{ProductID: 20, Description: "DOSE WHISKY", Quantity: 3, AttendantIDs: []int{1, 2}}

	assert.Equal(t, "20!DOSE WHISKY!3!1,2!", ledger.EncodeLine(line, true))
	assert.Equal(t, "20!DOSE WHISKY!3!!", ledger.EncodeLine(line, false))
}

func TestEncodeLine_SanitizesDelimiters(t *testing.T) {
	line := domain.LedgerLine{ProductID: 7, Description: "CAIPI!RINHA\nLIMAO", Quantity: 1}
	assert.Equal(t, "7!CAIPI RINHA LIMAO!1!!", ledger.EncodeLine(line, false))
}

func TestBodyRoundTrip(t *testing.T) {
	lines := []domain.LedgerLine{
		{ProductID: 10, Description: "CERVEJA", Quantity: 2, AttendantIDs: []int{}},
		{ProductID: 20, Description: "DOSE", Quantity: 3, AttendantIDs: []int{1, 2}},
	}
	encoded := []string{ledger.EncodeLine(lines[0], false), ledger.EncodeLine(lines[1], true)}

	parsed, err := ledger.ParseBody(ledger.EncodeBody(encoded))
	require.NoError(t, err)
	require.Len(t, parsed, 2)
	for i := range lines {
		assert.Equal(t, lines[i].ProductID, parsed[i].ProductID)
		assert.Equal(t, lines[i].Quantity, parsed[i].Quantity)
		assert.Equal(t, lines[i].AttendantIDs, parsed[i].AttendantIDs)
	}
}

func TestParseBody(t *testing.T) {
	t.Run("blank and CRLF lines tolerated", func(t *testing.T) {
		parsed, err := ledger.ParseBody("10!CERVEJA!2!!\r\n\n20!DOSE!1!4!\n")
		require.NoError(t, err)
		require.Len(t, parsed, 2)
		assert.Equal(t, []int{4}, parsed[1].AttendantIDs)
	})

	t.Run("legacy null attendant", func(t *testing.T) {
		parsed, err := ledger.ParseBody("10!CERVEJA!2!null!")
		require.NoError(t, err)
		assert.Empty(t, parsed[0].AttendantIDs)
	})

	t.Run("bad quantity", func(t *testing.T) {
		_, err := ledger.ParseBody("10!CERVEJA!two!!")
		assert.ErrorIs(t, err, apperrors.ErrParse)
	})

	t.Run("too few fields", func(t *testing.T) {
		_, err := ledger.ParseBody("10!CERVEJA")
		assert.ErrorIs(t, err, apperrors.ErrParse)
	})
}

func TestSplitAttendants(t *testing.T) {
	ids, err := ledger.SplitAttendants("")
	require.NoError(t, err)
	assert.NotNil(t, ids)
	assert.Empty(t, ids)

	ids, err = ledger.SplitAttendants("3, 5,")
	require.NoError(t, err)
	assert.Equal(t, []int{3, 5}, ids)

	_, err = ledger.SplitAttendants("3,x")
	assert.ErrorIs(t, err, apperrors.ErrParse)
}
