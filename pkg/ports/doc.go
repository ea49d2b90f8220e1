/*
Package ports defines the driven ports of thedom.

These interfaces decouple element construction from where element templates
are stored, so the same templates can come from a Loam directory, memory or
any other source.

# Key Interfaces

  - TemplateLoader: retrieves element templates by ID and lists them.
  - Watchable: notifies about template changes for hot reload.
*/
package ports
