package extract

// Structural tags queries, one per grammar language.
//
// Capture convention: a capture named "definition.<kind>" tags the node
// spanning an entire definition block, while "name.definition.<kind>" tags
// the sub-node holding just the identifier. The synthesizer relies on this
// two-tier convention to resolve spans: identifier captures are widened to
// their parent node, the enclosing declaration.

const goTagsQuery = `
(function_declaration
  name: (identifier) @name.definition.function) @definition.function

(method_declaration
  name: (field_identifier) @name.definition.method) @definition.method

(type_declaration
  (type_spec
    name: (type_identifier) @name.definition.type)) @definition.type
`

const typescriptTagsQuery = `
(function_declaration
  name: (identifier) @name.definition.function) @definition.function

(class_declaration
  name: (type_identifier) @name.definition.class) @definition.class

(interface_declaration
  name: (type_identifier) @name.definition.interface) @definition.interface

(enum_declaration
  name: (identifier) @name.definition.enum) @definition.enum

(type_alias_declaration
  name: (type_identifier) @name.definition.type) @definition.type

(method_definition
  name: (property_identifier) @name.definition.method) @definition.method

(export_statement
  declaration: (class_declaration
    name: (type_identifier) @name.definition.class)) @definition.class

(export_statement
  declaration: (function_declaration
    name: (identifier) @name.definition.function)) @definition.function

(lexical_declaration
  (variable_declarator
    name: (identifier) @name.definition.function
    value: (arrow_function))) @definition.function
`

const pythonTagsQuery = `
(function_definition
  name: (identifier) @name.definition.function) @definition.function

(class_definition
  name: (identifier) @name.definition.class) @definition.class
`

const rustTagsQuery = `
(function_item
  name: (identifier) @name.definition.function) @definition.function

(struct_item
  name: (type_identifier) @name.definition.struct) @definition.struct

(enum_item
  name: (type_identifier) @name.definition.enum) @definition.enum

(trait_item
  name: (type_identifier) @name.definition.trait) @definition.trait

(impl_item) @definition.impl

(mod_item
  name: (identifier) @name.definition.module) @definition.module
`

const cTagsQuery = `
(function_definition
  declarator: (function_declarator
    declarator: (identifier) @name.definition.function)) @definition.function

(struct_specifier
  name: (type_identifier) @name.definition.struct) @definition.struct

(enum_specifier
  name: (type_identifier) @name.definition.enum) @definition.enum

(type_definition
  declarator: (type_identifier) @name.definition.type) @definition.type
`

const javaTagsQuery = `
(class_declaration
  name: (identifier) @name.definition.class) @definition.class

(interface_declaration
  name: (identifier) @name.definition.interface) @definition.interface

(enum_declaration
  name: (identifier) @name.definition.enum) @definition.enum

(method_declaration
  name: (identifier) @name.definition.method) @definition.method

(constructor_declaration
  name: (identifier) @name.definition.method) @definition.method
`

const phpTagsQuery = `
(function_definition
  name: (name) @name.definition.function) @definition.function

(method_declaration
  name: (name) @name.definition.method) @definition.method

(class_declaration
  name: (name) @name.definition.class) @definition.class

(interface_declaration
  name: (name) @name.definition.interface) @definition.interface

(trait_declaration
  name: (name) @name.definition.trait) @definition.trait
`

const rubyTagsQuery = `
(method
  name: (identifier) @name.definition.method) @definition.method

(singleton_method
  name: (identifier) @name.definition.method) @definition.method

(class
  name: (constant) @name.definition.class) @definition.class

(module
  name: (constant) @name.definition.module) @definition.module
`
