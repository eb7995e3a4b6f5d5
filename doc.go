// Package kermat provides kernel methods building blocks for Go: validated
// hyperparameters, composable kernel construction and a dense Gramian engine.
//
// Kermat separates the algebra of kernels from the linear algebra of kernel
// matrices. Composition classes turn a scalar transform into a kernel with
// known Mercer properties, and the Gramian engine evaluates inner products,
// squared distances and kernel matrices over whole data sets at once.
//
// # Quick Start
//
// A Gaussian kernel matrix over row observations:
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/kermat/compose"
//	    "github.com/YuminosukeSato/kermat/gram"
//	    "gonum.org/v1/gonum/mat"
//	)
//
//	func main() {
//	    X := mat.NewDense(3, 2, []float64{
//	        0, 0,
//	        1, 0,
//	        0, 1,
//	    })
//
//	    c, err := compose.NewExponential(0.5)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    k, err := gram.DistanceKernel(c)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    K := gram.KernelMatrix(X, gram.ObsInRows, k, true)
//	    fmt.Println(mat.Formatted(K))
//	}
//
// # Packages
//
//   - compose: composition classes (exponential, rational, Matérn, polynomial
//     and friends) with category properties and composability checks
//   - gram: Gramians, squared distances, kernel matrices, centering and the
//     Nyström low-rank approximation
//   - preprocessing: fitted transformers (KernelCenterer, Nystroem)
//   - core/interval: bounds and intervals for parameter domains
//   - core/param: validated hyperparameters
//   - core/model: estimator state and the Transformer contract
//   - core/parallel: CPU-parallel loop helpers
//   - pkg/errors: typed errors, warnings and numeric safety helpers
//   - pkg/log: structured logging interfaces and adapters
//
// # Performance
//
// Symmetric kernel matrices are computed one triangle at a time and mirrored,
// so they come back exactly symmetric, and the dense loops parallelize across
// CPU cores for larger inputs.
package kermat
