// Package directory parses the YAML manifest that maps departments to their
// master XML documents and members to their roles. It stands in for the
// external directory/identity collaborator: the core consumes the resulting
// Member and Department values but never performs the lookup itself.
package directory
