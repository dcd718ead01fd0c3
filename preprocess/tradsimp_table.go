package preprocess

// traditionalToSimplified maps common Traditional Chinese characters to
// their Simplified counterparts. It is not exhaustive — spec.md §4.1
// scopes this to "a static table" and the domain this extractor serves
// is time expressions, so coverage is weighted toward calendar,
// numeral, and holiday vocabulary plus a sample of high-frequency
// characters. Characters already identical between scripts are omitted.
var traditionalToSimplified = map[rune]rune{
	// calendar / time vocabulary
	'週': '周', '禮': '礼', '點': '点', '時': '时', '鐘': '钟',
	'曆': '历', '個': '个', '兩': '两', '這': '这', '現': '现',
	'後': '后', '來': '来', '當': '当', '從': '从', '於': '于',
	'過': '过', '還': '还', '將': '将', '剛': '刚', '約': '约',
	'間': '间', '歲': '岁', '誕': '诞', '節': '节', '聖': '圣', '萬': '万',
	'億': '亿', '貳': '贰', '參': '叁', '陸': '陆', '倆': '俩',
	'曉': '晓', '晝': '昼', '歸': '归',

	// numerals (formal / financial forms; already-identical forms omitted)
	'壹': '一', '貮': '二', '肆': '四',

	// general high-frequency characters
	'國': '国', '學': '学', '會': '会', '說': '说', '為': '为', '與': '与',
	'對': '对', '開': '开', '關': '关', '見': '见', '聽': '听', '讀': '读',
	'寫': '写', '車': '车', '門': '门', '問': '问', '題': '题', '實': '实',
	'務': '务', '經': '经', '濟': '济', '電': '电', '腦': '脑', '網': '网',
	'絡': '络', '頁': '页', '號': '号', '碼': '码', '買': '买', '賣': '卖',
	'錢': '钱', '價': '价', '業': '业', '產': '产', '動': '动', '員': '员',
	'區': '区', '長': '长', '張': '张', '書': '书', '樂': '乐', '飛': '飞',
	'馬': '马', '魚': '鱼', '鳥': '鸟', '龍': '龙', '鳳': '凤', '氣': '气',
	'風': '风', '雲': '云', '體': '体', '頭': '头',
	'臉': '脸', '顏': '颜', '麼': '么', '誰': '谁', '們': '们', '種': '种',
	'類': '类', '樣': '样', '標': '标', '準': '准', '確': '确', '認': '认',
	'識': '识', '義': '义', '議': '议', '論': '论', '語': '语', '詞': '词',
	'記': '记', '憶': '忆', '習': '习', '練': '练', '結': '结',
	'繼': '继', '續': '续', '處': '处', '辦': '办', '廠': '厂', '場': '场',
	'應': '应', '該': '该', '須': '须', '讓': '让',
	'給': '给', '嗎': '吗',
}
