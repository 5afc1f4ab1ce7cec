package binder

import "fmt"

// Operation names a record store operation an Action can target.
type Operation int

const (
	OpListAll Operation = iota + 1
	OpInsert
	OpUpdateField
	OpSoftDelete
	OpQueryByField
	OpBulkLoad
)

var operationNames = map[Operation]string{
	OpListAll:      "list_all",
	OpInsert:       "insert",
	OpUpdateField:  "update_field",
	OpSoftDelete:   "soft_delete",
	OpQueryByField: "query_by_field",
	OpBulkLoad:     "bulk_load",
}

// Operations returns every declared operation in declaration order.
func Operations() []Operation {
	return []Operation{OpListAll, OpInsert, OpUpdateField, OpSoftDelete, OpQueryByField, OpBulkLoad}
}

func (o Operation) String() string {
	if name, ok := operationNames[o]; ok {
		return name
	}
	return fmt.Sprintf("operation(%d)", int(o))
}
