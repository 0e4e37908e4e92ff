package src

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/gonum/matrix/mat64"
)

// ReadFile loads a tab separated matrix with optional row and column
// names into a dense matrix.
func ReadFile(inFile string, rowName bool, colName bool) (dataR *mat64.Dense, rName []string, cName []string, err error) {
	//init
	lc, cc, err := lcCount(inFile)
	if err != nil {
		return
	}
	if rowName {
		cc -= 1
	}
	if colName {
		lc -= 1
	}
	data := mat64.NewDense(lc, cc, nil)
	rName = make([]string, 0)
	cName = make([]string, 0)

	//file
	file, err := os.Open(inFile)
	if err != nil {
		return
	}
	defer file.Close()

	//load
	br := bufio.NewReaderSize(file, 32768000)
	r := 0
	touchCol := false
	for {
		line, isPrefix, err1 := br.ReadLine()
		if err1 != nil {
			break
		}
		if isPrefix {
			return
		}

		str := string(line)
		elements := strings.Split(str, "\t")
		if rowName {
			value := Shift(&elements)
			rName = append(rName, value)
		}
		//first element already shifted if rowName is true
		if colName && !touchCol {
			cName = elements
			touchCol = true
		} else {
			for c, i := range elements {
				j, _ := strconv.ParseFloat(i, 64)
				data.Set(r, c, j)
			}
			r++
		}
	}
	//shift first rowName away if colName exist
	if colName && rowName {
		Shift(&rName)
	}
	return data, rName, cName, nil
}

//line count(nRow) and column count(nCol) for a tab separated txt
func lcCount(filename string) (lc int, cc int, err error) {
	lc = 0
	cc = 0
	touch := true

	file, err := os.Open(filename)
	if err != nil {
		return
	}
	defer file.Close()

	//load
	br := bufio.NewReaderSize(file, 32768000)
	for {
		line, isPrefix, err1 := br.ReadLine()
		if err1 != nil {
			break
		}
		if isPrefix {
			return
		}

		if touch {
			cc = strings.Count(string(line), "\t")
			cc += 1
			touch = false
		}
		lc++
	}
	return lc, cc, nil
}

// ReadCountMatrix loads a gene by cell count matrix from a tab separated
// file with gene names in the first column and cell names in the header.
func ReadCountMatrix(inFile string) (*CountMatrix, error) {
	data, genes, cells, err := ReadFile(inFile, true, true)
	if err != nil {
		return nil, err
	}
	return NewCountMatrix(data, genes, cells)
}

// ReadGeneList loads a single-column gene identifier file, one gene per
// line, no header. Empty lines are skipped.
func ReadGeneList(inFile string) (genes []string, err error) {
	genes = make([]string, 0)
	//file
	file, err := os.Open(inFile)
	if err != nil {
		return
	}
	defer file.Close()
	//load
	br := bufio.NewReaderSize(file, 32768000)
	for {
		line, isPrefix, err1 := br.ReadLine()
		if err1 != nil {
			break
		}
		if isPrefix {
			return
		}
		str := string(line)
		elements := strings.Split(str, "\t")
		value := Shift(&elements)
		if value == "" {
			continue
		}
		genes = append(genes, value)
	}
	return genes, nil
}

// ReadMetadata loads a per-cell metadata table from a tab separated file
// with cell names in the first column and attribute names in the header.
func ReadMetadata(inFile string) (*PerCellMetadata, error) {
	data, cells, colNames, err := ReadFile(inFile, true, true)
	if err != nil {
		return nil, err
	}
	table := NewPerCellMetadata(cells)
	nRow, _ := data.Caps()
	for j, name := range colNames {
		values := make([]float64, nRow)
		for i := 0; i < nRow; i++ {
			values[i] = data.At(i, j)
		}
		if err := table.SetColumn(name, cells, values); err != nil {
			return nil, err
		}
	}
	return table, nil
}

// WriteMetadata writes the metadata table as tab separated text with a
// header line and the cell name as first column.
func WriteMetadata(outFile string, table *PerCellMetadata) (err error) {
	file, err := os.OpenFile(outFile, os.O_WRONLY|os.O_CREATE, 0644)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer file.Close()
	file.Truncate(0)
	file.Seek(0, 0)
	wr := bufio.NewWriterSize(file, 192000)
	names := table.ColumnNames()
	wr.WriteString("cell")
	for _, name := range names {
		wr.WriteString("\t")
		wr.WriteString(name)
	}
	wr.WriteString("\n")
	var ele string
	for i, cell := range table.Cells {
		wr.WriteString(cell)
		for _, name := range names {
			col, _ := table.Column(name)
			ele = strconv.FormatFloat(col[i], 'f', 6, 64)
			wr.WriteString("\t")
			wr.WriteString(ele)
		}
		wr.WriteString("\n")
	}
	wr.Flush()
	return err
}

// WriteGeneLists writes the GeneLists side channel as two-column tab
// separated text, one line per gene with its list key.
func WriteGeneLists(outFile string, exp *Experiment) (err error) {
	file, err := os.OpenFile(outFile, os.O_WRONLY|os.O_CREATE, 0644)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer file.Close()
	file.Truncate(0)
	file.Seek(0, 0)
	wr := bufio.NewWriterSize(file, 192000)
	keys := make([]string, 0)
	for _, key := range []string{ListGenesMt, ListGenesRibo} {
		_, exist := exp.GeneLists[key]
		if exist {
			keys = append(keys, key)
		}
	}
	extra := make([]string, 0)
	for key := range exp.GeneLists {
		if key != ListGenesMt && key != ListGenesRibo {
			extra = append(extra, key)
		}
	}
	sort.Strings(extra)
	keys = append(keys, extra...)
	for _, key := range keys {
		for _, gene := range exp.GeneLists[key] {
			wr.WriteString(key)
			wr.WriteString("\t")
			wr.WriteString(gene)
			wr.WriteString("\n")
		}
	}
	wr.Flush()
	return err
}

// Init creates the result folder and opens its log file for appending.
func Init(resFolder string) (logFile *os.File) {
	err := os.MkdirAll("./"+resFolder, 0755)
	if err != nil {
		fmt.Println(err)
		return
	}
	logFile, err = os.OpenFile("./"+resFolder+"/log.txt", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		log.Fatal(err)
	}
	return logFile
}
