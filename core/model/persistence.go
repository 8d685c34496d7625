package model

import (
	"io"
	"os"

	"github.com/YuminosukeSato/linreg/pkg/errors"
)

// SaveWeights はModelWeightsをJSONとしてwに書き出す
//
// 使用例:
//
//	w, err := reg.Weights()
//	// ...
//	err = model.SaveWeights(os.Stdout, w)
func SaveWeights(w io.Writer, mw *ModelWeights) error {
	if err := mw.Validate(); err != nil {
		return err
	}
	data, err := mw.ToJSON()
	if err != nil {
		return err
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return errors.Wrap(err, "write model weights")
	}
	return nil
}

// LoadWeights はrからJSON形式のModelWeightsを読み込む
func LoadWeights(r io.Reader) (*ModelWeights, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read model weights")
	}
	mw := &ModelWeights{}
	if err := mw.FromJSON(data); err != nil {
		return nil, err
	}
	return mw, nil
}

// SaveModel はモデルの重みをファイルに保存する
func SaveModel(m WeightExporter, filename string) (err error) {
	mw, err := m.Weights()
	if err != nil {
		return err
	}
	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrapf(err, "failed to create file %s", filename)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = errors.Wrap(cerr, "close weights file")
		}
	}()
	return SaveWeights(file, mw)
}

// LoadModel はファイルから重みを読み込み、モデルに設定する
func LoadModel(m WeightExporter, filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return errors.Wrapf(err, "failed to open file %s", filename)
	}
	defer file.Close()

	mw, err := LoadWeights(file)
	if err != nil {
		return err
	}
	return m.SetWeights(mw)
}
