package anexo

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Storage grava e lê anexos em um diretório local. Cada arquivo recebe um
// nome único; o nome original fica só nos metadados.
type Storage struct {
	dir string
}

var ErrNomeInvalido = errors.New("nome de arquivo inválido")

func NewStorage(dir string) (*Storage, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("não foi possível criar o diretório de upload %s: %w", dir, err)
	}
	return &Storage{dir: abs}, nil
}

// Guardar persiste o conteúdo e devolve o nome único gerado, preservando a
// extensão do nome original.
func (s *Storage) Guardar(nomeOriginal string, conteudo io.Reader) (string, error) {
	if strings.Contains(nomeOriginal, "..") {
		return "", ErrNomeInvalido
	}
	nomeUnico := uuid.NewString() + filepath.Ext(nomeOriginal)

	destino, err := os.Create(filepath.Join(s.dir, nomeUnico))
	if err != nil {
		return "", fmt.Errorf("falha ao armazenar arquivo %s: %w", nomeOriginal, err)
	}
	defer destino.Close()

	if _, err := io.Copy(destino, conteudo); err != nil {
		os.Remove(destino.Name())
		return "", fmt.Errorf("falha ao armazenar arquivo %s: %w", nomeOriginal, err)
	}
	return nomeUnico, nil
}

// Caminho devolve o caminho absoluto de um arquivo guardado, recusando nomes
// que escapem do diretório.
func (s *Storage) Caminho(nomeArquivo string) (string, error) {
	caminho := filepath.Join(s.dir, filepath.Clean("/"+nomeArquivo))
	if !strings.HasPrefix(caminho, s.dir) {
		return "", ErrNomeInvalido
	}
	if _, err := os.Stat(caminho); err != nil {
		return "", fmt.Errorf("arquivo não encontrado: %s", nomeArquivo)
	}
	return caminho, nil
}

// Remover apaga o arquivo do disco; ausência não é erro.
func (s *Storage) Remover(nomeArquivo string) error {
	caminho := filepath.Join(s.dir, filepath.Clean("/"+nomeArquivo))
	if !strings.HasPrefix(caminho, s.dir) {
		return ErrNomeInvalido
	}
	err := os.Remove(caminho)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
