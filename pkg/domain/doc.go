/*
Package domain contains the core record model of the registrar.

It defines the student record, the closed set of columns a record carries and
the field kinds that govern how raw console input for each column is parsed.
This package is kept pure and free of external dependencies like I/O or
persistence, so every adapter and the menu engine can share it.

# Key Entities

  - Student: One row of the Students table.
  - Field: A column of the table (StudentId, FirstName, ..., isDeleted).
  - FieldKind: The parsing rule a Field's input is validated against.
*/
package domain
