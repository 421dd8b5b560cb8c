package catalog

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sbinet/npyio/npy"
	"gonum.org/v1/gonum/mat"
)

// LoadEmbeddings reads an N x D float matrix stored in NumPy .npy format.
func LoadEmbeddings(path string) ([][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	rows, err := ReadEmbeddings(f)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return rows, nil
}

func ReadEmbeddings(r io.Reader) ([][]float64, error) {
	nr, err := npy.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("read npy header: %w", err)
	}

	descr := nr.Header.Descr
	if len(descr.Shape) != 2 {
		return nil, fmt.Errorf("%w: shape %v", ErrNotMatrix, descr.Shape)
	}
	if descr.Fortran {
		return nil, fmt.Errorf("%w: fortran order is not supported", ErrNotMatrix)
	}

	n, d := descr.Shape[0], descr.Shape[1]

	var flat []float64
	switch descr.Type {
	case "<f4":
		var data []float32
		if err := nr.Read(&data); err != nil {
			return nil, fmt.Errorf("read npy data: %w", err)
		}
		flat = make([]float64, len(data))
		for i, v := range data {
			flat[i] = float64(v)
		}
	case "<f8":
		if err := nr.Read(&flat); err != nil {
			return nil, fmt.Errorf("read npy data: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w %q", ErrUnsupportedDType, descr.Type)
	}

	if len(flat) != n*d {
		return nil, fmt.Errorf("%w: header says %dx%d, found %d values", ErrNotMatrix, n, d, len(flat))
	}

	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = flat[i*d : (i+1)*d : (i+1)*d]
	}
	return rows, nil
}

// WriteEmbeddings stores rows as a float64 .npy matrix readable by
// LoadEmbeddings and numpy.load.
func WriteEmbeddings(path string, rows [][]float64) error {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return errors.New("write embeddings: empty matrix")
	}

	n, d := len(rows), len(rows[0])
	flat := make([]float64, 0, n*d)
	for i, row := range rows {
		if len(row) != d {
			return fmt.Errorf("write embeddings: row %d has %d columns, expected %d", i, len(row), d)
		}
		flat = append(flat, row...)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	if err := npy.Write(f, mat.NewDense(n, d, flat)); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
