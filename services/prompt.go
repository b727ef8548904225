package services

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"bikeshare-explorer/models"
)

// Prompter asks the user for filters and yes/no answers
type Prompter struct {
	in        *bufio.Scanner
	out       io.Writer
	validator *FilterValidator
	cities    []string
}

// NewPrompter reads answers line by line from in
func NewPrompter(in io.Reader, out io.Writer, v *FilterValidator, cities []string) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out, validator: v, cities: cities}
}

// AskFilters asks for city, month and day until each answer is valid.
// It returns io.EOF when input ends.
func (p *Prompter) AskFilters() (models.FilterSpec, error) {
	fmt.Fprintln(p.out, "Hello! Let's explore some US bikeshare data!")
	fmt.Fprintln(p.out, "The program will ask you for a (1) city, (2) a month, and a (3) day of the week.")
	fmt.Fprintln(p.out)

	city, err := p.ask("city",
		fmt.Sprintf("Please choose the city: %s:", titleList(p.cities)), "")
	if err != nil {
		return models.FilterSpec{}, err
	}
	month, err := p.ask("month",
		fmt.Sprintf("Investigate all or selected months. Choose from: All, %s:", titleList(models.FilterMonths)),
		`If no month should be selected, type "all".`)
	if err != nil {
		return models.FilterSpec{}, err
	}
	day, err := p.ask("day",
		fmt.Sprintf("Investigate all or selected days. Choose from: All, %s:", titleList(models.Weekdays)),
		`If no particular day of the week should be selected, type "all".`)
	if err != nil {
		return models.FilterSpec{}, err
	}

	fmt.Fprintln(p.out, strings.Repeat("-", 40))
	return models.FilterSpec{City: city, Month: month, Day: day}, nil
}

// AskYesNo asks question once. With defaultYes only "no"/"n" answers false,
// otherwise only "yes"/"y" answers true.
func (p *Prompter) AskYesNo(question string, defaultYes bool) (bool, error) {
	fmt.Fprintln(p.out, question)
	line, err := p.readLine()
	if err != nil {
		return false, err
	}
	switch normalizeAnswer(line) {
	case "yes", "y":
		return true, nil
	case "no", "n":
		return false, nil
	default:
		return defaultYes, nil
	}
}

func (p *Prompter) ask(field, question, hint string) (string, error) {
	for {
		fmt.Fprintln(p.out, question)
		line, err := p.readLine()
		if err != nil {
			return "", err
		}
		value := normalizeAnswer(line)
		if err := p.validator.Field(field, value); err != nil {
			fmt.Fprintln(p.out, "Your input does not match the available options!")
			if hint != "" {
				fmt.Fprintln(p.out, hint)
			}
			fmt.Fprintln(p.out)
			continue
		}
		fmt.Fprintf(p.out, "You have chosen %s.\n\n", models.Title(value))
		return value, nil
	}
}

func (p *Prompter) readLine() (string, error) {
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return p.in.Text(), nil
}

func titleList(values []string) string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = models.Title(v)
	}
	return strings.Join(out, ", ")
}
