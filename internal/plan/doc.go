// Package plan turns annotated targets into literal helper plans consumed by
// code generation.
//
// Resolution pipeline, per package:
//  1. Validate each target: struct shape, no type parameters, known markers
//  2. Derive helper names and claim them in a package-scoped Registry
//  3. Reject names that are reserved or already declared in the package
//  4. Resolve the constructor and mutation method through go/types to learn
//     result and element types (deferred or strict contract checking)
//  5. Collect the imports the helper signatures need
package plan
