package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/proposal/pkg/core"
	"github.com/aretw0/proposal/pkg/tabular"
)

const cjkDataset = "工具ID,工具名稱,核心功能,適用對象/痛點,性質分類,工具連結,備註\n" +
	"A01,呼吸急救,三分鐘降溫,孩子崩潰時,情緒,https://example.com/a01,ignored\n" +
	",無編號工具,有描述,有痛點,情緒,,\n" +
	"A03,,沒有名稱,,,,\n" +
	"A04,換句話說,把指責改成描述,親子溝通,溝通,,\n"

func TestParseRecordsDropsMalformed(t *testing.T) {
	records := core.ParseRecords(cjkDataset)
	require.Len(t, records, 2)

	assert.Equal(t, "A01", records[0].ID)
	assert.Equal(t, "呼吸急救", records[0].Name)
	assert.Equal(t, "三分鐘降溫", records[0].Core)
	assert.Equal(t, "孩子崩潰時", records[0].Pains)
	assert.Equal(t, "https://example.com/a01", records[0].Link)
	assert.Equal(t, "A04", records[1].ID)

	for _, r := range records {
		assert.NotEmpty(t, r.ID, "records without ID must never surface")
	}
}

func TestParseRecordsWithByteOrderMark(t *testing.T) {
	records := core.ParseRecords("\ufeff" + cjkDataset)
	require.Len(t, records, 2)
	assert.Equal(t, "A01", records[0].ID)
}

func TestRecordFromRowEnglishHeaders(t *testing.T) {
	rows := tabular.Parse("id,name,description,steps,video_name\nT1,Timer,,1. start,Intro\n")
	require.Len(t, rows, 1)

	r := core.RecordFromRow(rows[0])
	assert.Equal(t, core.Record{ID: "T1", Name: "Timer", Steps: "1. start", VideoName: "Intro"}, r)
}

func TestRecordFromRowPrefersFirstAlias(t *testing.T) {
	r := core.RecordFromRow(tabular.Row{"工具ID": "X", "id": "Y", "name": "N"})
	assert.Equal(t, "X", r.ID)

	r = core.RecordFromRow(tabular.Row{"工具ID": "", "id": "Y", "name": "N"})
	assert.Equal(t, "Y", r.ID)
}

func TestRecordRowRoundTrip(t *testing.T) {
	in := core.Record{ID: "A", Name: "B", Core: "c", Link: "l", VideoLink: "v"}
	text, err := tabular.Encode(core.RecordHeader, []tabular.Row{in.Row()})
	require.NoError(t, err)

	out := core.ParseRecords(text)
	require.Len(t, out, 1)
	assert.Equal(t, in, out[0])
}

func TestParseDocType(t *testing.T) {
	tests := []struct {
		in   string
		want core.DocType
	}{
		{"", core.Talk},
		{"talk", core.Talk},
		{"COURSE", core.Course},
		{"活動", core.Activity},
		{" 課程 ", core.Course},
	}
	for _, tc := range tests {
		got, err := core.ParseDocType(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	_, err := core.ParseDocType("webinar")
	assert.True(t, errors.Is(err, core.ErrUnknownDocType))
}

func TestDocTypeLabels(t *testing.T) {
	assert.Equal(t, "演講", core.Talk.Label())
	assert.Equal(t, "課程", core.Course.Label())
	assert.Equal(t, "活動", core.Activity.Label())
	assert.Equal(t, "演講", core.DocType("bogus").Label())
	assert.Len(t, core.DocTypes(), 3)
}
