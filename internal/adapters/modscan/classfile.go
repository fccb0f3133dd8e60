package modscan

import (
	"encoding/binary"

	"go.trai.ch/zerr"
)

// Minimal class-file reader: just enough of JVMS §4 to pull the module name
// out of a compiled module descriptor. The constant pool is scanned fully,
// then fields, methods and class attributes are walked until the Module
// attribute is found.

const classMagic = 0xCAFEBABE

// Constant pool tags.
const (
	tagUtf8               = 1
	tagInteger            = 3
	tagFloat              = 4
	tagLong               = 5
	tagDouble             = 6
	tagClass              = 7
	tagString             = 8
	tagFieldref           = 9
	tagMethodref          = 10
	tagInterfaceMethodref = 11
	tagNameAndType        = 12
	tagMethodHandle       = 15
	tagMethodType         = 16
	tagDynamic            = 17
	tagInvokeDynamic      = 18
	tagModule             = 19
	tagPackage            = 20
)

type byteReader struct {
	data []byte
	pos  int
}

func (r *byteReader) remaining() int { return len(r.data) - r.pos }

func (r *byteReader) u1() (uint8, error) {
	if r.remaining() < 1 {
		return 0, zerr.New("unexpected end of class file")
	}
	v := r.data[r.pos]
	r.pos++
	return v, nil
}

func (r *byteReader) u2() (uint16, error) {
	if r.remaining() < 2 {
		return 0, zerr.New("unexpected end of class file")
	}
	v := binary.BigEndian.Uint16(r.data[r.pos:])
	r.pos += 2
	return v, nil
}

func (r *byteReader) u4() (uint32, error) {
	if r.remaining() < 4 {
		return 0, zerr.New("unexpected end of class file")
	}
	v := binary.BigEndian.Uint32(r.data[r.pos:])
	r.pos += 4
	return v, nil
}

func (r *byteReader) skip(n int) error {
	if n < 0 || r.remaining() < n {
		return zerr.New("unexpected end of class file")
	}
	r.pos += n
	return nil
}

func (r *byteReader) bytes(n int) ([]byte, error) {
	if n < 0 || r.remaining() < n {
		return nil, zerr.New("unexpected end of class file")
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

// moduleName extracts the declared module name from the bytes of a compiled
// module descriptor.
func moduleName(data []byte) (string, error) {
	r := &byteReader{data: data}

	magic, err := r.u4()
	if err != nil {
		return "", err
	}
	if magic != classMagic {
		return "", zerr.New("not a class file")
	}
	if err := r.skip(4); err != nil { // minor, major
		return "", err
	}

	utf8s, modules, err := readConstantPool(r)
	if err != nil {
		return "", err
	}

	// access_flags, this_class, super_class
	if err := r.skip(6); err != nil {
		return "", err
	}

	interfaces, err := r.u2()
	if err != nil {
		return "", err
	}
	if err := r.skip(int(interfaces) * 2); err != nil {
		return "", err
	}

	// A module descriptor carries no fields or methods, but walk them anyway
	// so malformed input fails cleanly instead of misreading offsets.
	for range 2 {
		if err := skipMembers(r); err != nil {
			return "", err
		}
	}

	attrCount, err := r.u2()
	if err != nil {
		return "", err
	}
	for range attrCount {
		nameIndex, err := r.u2()
		if err != nil {
			return "", err
		}
		length, err := r.u4()
		if err != nil {
			return "", err
		}
		if utf8s[nameIndex] != "Module" {
			if err := r.skip(int(length)); err != nil {
				return "", err
			}
			continue
		}
		moduleIndex, err := r.u2()
		if err != nil {
			return "", err
		}
		utf8Index, ok := modules[moduleIndex]
		if !ok {
			return "", zerr.New("Module attribute does not reference a module constant")
		}
		name, ok := utf8s[utf8Index]
		if !ok {
			return "", zerr.New("module constant does not reference a name")
		}
		return name, nil
	}

	return "", zerr.New("no Module attribute present")
}

// readConstantPool returns the utf8 constants and the Module-constant
// name_index mapping, both keyed by pool index.
func readConstantPool(r *byteReader) (map[uint16]string, map[uint16]uint16, error) {
	count, err := r.u2()
	if err != nil {
		return nil, nil, err
	}

	utf8s := make(map[uint16]string)
	modules := make(map[uint16]uint16)

	for i := uint16(1); i < count; i++ {
		tag, err := r.u1()
		if err != nil {
			return nil, nil, err
		}
		switch tag {
		case tagUtf8:
			length, err := r.u2()
			if err != nil {
				return nil, nil, err
			}
			b, err := r.bytes(int(length))
			if err != nil {
				return nil, nil, err
			}
			utf8s[i] = string(b)
		case tagInteger, tagFloat:
			err = r.skip(4)
		case tagLong, tagDouble:
			err = r.skip(8)
			i++ // long and double take two pool slots
		case tagClass, tagString, tagMethodType, tagPackage:
			err = r.skip(2)
		case tagFieldref, tagMethodref, tagInterfaceMethodref, tagNameAndType, tagDynamic, tagInvokeDynamic:
			err = r.skip(4)
		case tagMethodHandle:
			err = r.skip(3)
		case tagModule:
			nameIndex, err2 := r.u2()
			if err2 != nil {
				return nil, nil, err2
			}
			modules[i] = nameIndex
		default:
			return nil, nil, zerr.With(zerr.New("unknown constant pool tag"), "tag", int(tag))
		}
		if err != nil {
			return nil, nil, err
		}
	}

	return utf8s, modules, nil
}

// skipMembers walks one fields or methods table.
func skipMembers(r *byteReader) error {
	count, err := r.u2()
	if err != nil {
		return err
	}
	for range count {
		if err := r.skip(6); err != nil { // access_flags, name_index, descriptor_index
			return err
		}
		attrCount, err := r.u2()
		if err != nil {
			return err
		}
		for range attrCount {
			if err := r.skip(2); err != nil { // attribute_name_index
				return err
			}
			length, err := r.u4()
			if err != nil {
				return err
			}
			if err := r.skip(int(length)); err != nil {
				return err
			}
		}
	}
	return nil
}
