package response

import (
	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

var copyOption = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: uuid.UUID{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return src.(uuid.UUID).String(), nil
			},
		},
	},
}

// mustCopy panics on mapping errors; field sets are fixed at compile time.
func mustCopy(dst, src any) {
	if err := copier.CopyWithOption(dst, src, copyOption); err != nil {
		panic("response mapping: " + err.Error())
	}
}
