/*
Package ports defines the driven ports (interfaces) of the registrar.

These interfaces decouple the menu and binding logic from storage, allowing the
same session to run against SQLite, PostgreSQL, Redis or memory.

# Key Interfaces

  - RecordStore: Persists student records and answers listing and lookup queries.

Adapters verify themselves against RunRecordStoreContract.
*/
package ports
