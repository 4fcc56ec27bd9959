package lazvlr

import (
	jsoniter "github.com/json-iterator/go"
)

var jsonConfig = jsoniter.ConfigCompatibleWithStandardLibrary

// vlrDescription is the JSON shape of a Vlr, meant for tooling and
// diagnostics. The wire layout of RecordData stays the only decode surface.
type vlrDescription struct {
	Compressor           string            `json:"compressor"`
	CompressorCode       uint16            `json:"compressor_code"`
	Coder                uint16            `json:"coder"`
	Version              string            `json:"version"`
	Options              uint32            `json:"options"`
	ChunkSize            uint32            `json:"chunk_size"`
	VariableSizeChunks   bool              `json:"variable_size_chunks"`
	NumberOfSpecialEvlrs int64             `json:"number_of_special_evlrs"`
	OffsetToSpecialEvlrs int64             `json:"offset_to_special_evlrs"`
	PointRecordSize      uint64            `json:"point_record_size"`
	Items                []itemDescription `json:"items"`
}

type itemDescription struct {
	Type    string `json:"type"`
	Code    uint16 `json:"code"`
	Size    uint16 `json:"size"`
	Version uint16 `json:"version"`
}

// MarshalJSON renders a human-readable description of the header.
func (v Vlr) MarshalJSON() ([]byte, error) {
	items := make([]itemDescription, 0, len(v.items))
	for _, item := range v.items {
		items = append(items, describeItem(item))
	}

	return jsonConfig.Marshal(vlrDescription{
		Compressor:           v.compressor.String(),
		CompressorCode:       uint16(v.compressor),
		Coder:                v.coder,
		Version:              v.version.String(),
		Options:              v.options,
		ChunkSize:            v.chunkSize,
		VariableSizeChunks:   v.UsesVariableSizeChunks(),
		NumberOfSpecialEvlrs: v.numberOfSpecialEvlrs,
		OffsetToSpecialEvlrs: v.offsetToSpecialEvlrs,
		PointRecordSize:      v.ItemsSize(),
		Items:                items,
	})
}

// MarshalJSON renders a human-readable description of one item.
func (i Item) MarshalJSON() ([]byte, error) {
	return jsonConfig.Marshal(describeItem(i))
}

func describeItem(item Item) itemDescription {
	return itemDescription{
		Type:    item.itemType.String(),
		Code:    item.itemType.Code(),
		Size:    item.size,
		Version: item.version,
	}
}
