package engine

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/errors"
	"github.com/lgbarn/chesscore/internal/hashing"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// fenFields is the number of space separated fields in a FEN string.
const fenFields = 6

// NewPositionFromFEN creates a position from a FEN string. Every failure is a
// *errors.FENError, which matches errors.ErrInvalidFEN.
func NewPositionFromFEN(fen string) (*Position, error) {
	parts := strings.Split(fen, " ")
	if len(parts) != fenFields {
		return nil, errors.NewFENError(errors.FieldCount, fen,
			"want "+strconv.Itoa(fenFields)+" space separated fields, got "+strconv.Itoa(len(parts)))
	}

	p := &Position{
		enPassant:   chess.NoSquare,
		repetitions: hashing.NewRepetitionTable(),
	}

	if err := parsePiecePositions(&p.board, parts[0]); err != nil {
		return nil, err
	}
	if err := parseSideToMove(p, parts[1]); err != nil {
		return nil, err
	}
	if err := parseCastlingRights(p, parts[2]); err != nil {
		return nil, err
	}
	if err := parseEnPassant(p, parts[3]); err != nil {
		return nil, err
	}
	if err := parseClocks(p, parts[4], parts[5]); err != nil {
		return nil, err
	}
	if err := checkPlacement(p); err != nil {
		return nil, err
	}

	p.refresh()
	if p.status[p.toMove.Opposite()].InCheck() {
		return nil, errors.NewFENError(errors.FieldPosition, "",
			"side not to move is in check")
	}

	// The set-up position is its own first occurrence.
	p.updateResult()
	return p, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return errors.NewFENError(errors.FieldPlacement, positions,
			"want 8 ranks, got "+strconv.Itoa(len(ranks)))
	}

	for i, row := range ranks {
		rank := chess.BoardSize - 1 - i
		file := 0
		prevDigit := false
		for _, c := range row {
			switch {
			case c >= '1' && c <= '8':
				if prevDigit {
					return errors.NewFENError(errors.FieldPlacement, row, "consecutive digits")
				}
				file += int(c - '0')
				prevDigit = true
			default:
				prevDigit = false
				pieceType := chess.PieceTypeFromLetter(byte(c))
				if c > unicode.MaxASCII || pieceType == chess.Empty {
					return errors.NewFENError(errors.FieldPlacement, string(c), "invalid piece character")
				}
				if file >= chess.BoardSize {
					return errors.NewFENError(errors.FieldPlacement, row, "rank has more than 8 squares")
				}

				colour := chess.White
				if unicode.IsLower(c) {
					colour = chess.Black
				}
				board.Place(chess.NewPiece(colour, pieceType, chess.Sq(file, rank)))
				file++
			}
			if file > chess.BoardSize {
				return errors.NewFENError(errors.FieldPlacement, row, "rank has more than 8 squares")
			}
		}
		if file != chess.BoardSize {
			return errors.NewFENError(errors.FieldPlacement, row,
				"rank has "+strconv.Itoa(file)+" squares, want 8")
		}
	}
	return nil
}

// parseSideToMove parses the side-to-move field of a FEN string.
func parseSideToMove(p *Position, side string) error {
	switch side {
	case "w":
		p.toMove = chess.White
	case "b":
		p.toMove = chess.Black
	default:
		return errors.NewFENError(errors.FieldSide, side, "want w or b")
	}
	return nil
}

// parseCastlingRights parses the castling field: an ordered subset of KQkq, or "-".
func parseCastlingRights(p *Position, castling string) error {
	if castling == "-" {
		p.castling = chess.NoCastling
		return nil
	}
	if castling == "" {
		return errors.NewFENError(errors.FieldCastling, castling, "empty field")
	}

	order := "KQkq"
	rights := []chess.CastlingRights{
		chess.WhiteKingside, chess.WhiteQueenside, chess.BlackKingside, chess.BlackQueenside,
	}
	next := 0
	for _, c := range castling {
		i := strings.IndexRune(order, c)
		if i < 0 {
			return errors.NewFENError(errors.FieldCastling, string(c), "invalid castling letter")
		}
		if i < next {
			return errors.NewFENError(errors.FieldCastling, castling, "letters out of order or repeated")
		}
		p.castling |= rights[i]
		next = i + 1
	}
	return nil
}

// parseEnPassant parses the en-passant field. The target must lie behind an
// enemy pawn that could just have made a double step.
func parseEnPassant(p *Position, ep string) error {
	if ep == "-" {
		p.enPassant = chess.NoSquare
		return nil
	}

	sq, err := chess.ParseSquare(ep)
	if err != nil {
		return errors.NewFENError(errors.FieldEnPassant, ep, "not a square")
	}

	// White to move captures onto rank 6, Black onto rank 3.
	wantRank := 5
	if p.toMove == chess.Black {
		wantRank = 2
	}
	if sq.Rank != wantRank {
		return errors.NewFENError(errors.FieldEnPassant, ep, "target on the wrong rank for the side to move")
	}

	mover := p.toMove.Opposite()
	pawn, ok := p.board.Get(sq.Add(chess.Vector{Rank: mover.Forward()}))
	if !ok || pawn.Type != chess.Pawn || pawn.Colour != mover {
		return errors.NewFENError(errors.FieldEnPassant, ep, "no pawn in front of the target")
	}
	if !p.board.IsEmpty(sq) || !p.board.IsEmpty(sq.Add(chess.Vector{Rank: -mover.Forward()})) {
		return errors.NewFENError(errors.FieldEnPassant, ep, "double step squares are occupied")
	}

	p.enPassant = sq
	return nil
}

// parseClocks parses the halfmove and fullmove clock fields.
func parseClocks(p *Position, halfmove, fullmove string) error {
	h, ok := parseDecimal(halfmove)
	if !ok {
		return errors.NewFENError(errors.FieldHalfmove, halfmove, "want a non-negative integer")
	}
	f, ok := parseDecimal(fullmove)
	if !ok || f < 1 {
		return errors.NewFENError(errors.FieldFullmove, fullmove, "want a positive integer")
	}
	p.halfmove = h
	p.fullmove = f
	return nil
}

// parseDecimal accepts only plain digit strings, so signs and spaces are rejected.
func parseDecimal(s string) (int, bool) {
	if s == "" || len(s) > 9 {
		return 0, false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	return n, err == nil
}

// checkPlacement enforces one king per colour and no pawns on the back ranks,
// and records the king squares.
func checkPlacement(p *Position) error {
	var kings [2]int
	for _, pc := range p.board.Pieces() {
		switch pc.Type {
		case chess.King:
			kings[pc.Colour]++
			p.kings[pc.Colour] = pc.Square
		case chess.Pawn:
			if pc.Square.Rank == 0 || pc.Square.Rank == chess.BoardSize-1 {
				return errors.NewFENError(errors.FieldPlacement, pc.Square.String(), "pawn on a back rank")
			}
		}
	}
	for _, c := range []chess.Colour{chess.White, chess.Black} {
		if kings[c] != 1 {
			return errors.NewFENError(errors.FieldPlacement, "",
				c.String()+" must have exactly one king, has "+strconv.Itoa(kings[c]))
		}
	}
	return nil
}

// ToFEN converts the position to a FEN string.
func (p *Position) ToFEN() string {
	var sb strings.Builder

	writePiecePositions(&sb, &p.board)
	sb.WriteByte(' ')
	writeSideToMove(&sb, p.toMove)
	sb.WriteByte(' ')
	sb.WriteString(p.castling.String())
	sb.WriteByte(' ')
	sb.WriteString(p.enPassant.String())
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.halfmove))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.fullmove))

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < chess.BoardSize; file++ {
			pc, ok := board.Get(chess.Sq(file, rank))
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(pc.Letter())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, side chess.Colour) {
	if side == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}
